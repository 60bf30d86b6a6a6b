package http

import (
	"errors"
	"net/http"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/claim"
	"campus-lost-found/internal/item/query"
	pkgErrors "campus-lost-found/pkg/errors"
)

var (
	errItemNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Item não encontrado")
	errAlreadyClaimed   = pkgErrors.NewHTTPError(http.StatusConflict, "Este item já foi reivindicado")
	errClaimInFlight    = pkgErrors.NewHTTPError(http.StatusConflict, "Uma solicitação para este item já está em andamento")
	errClaimUnconfirmed = pkgErrors.NewHTTPError(http.StatusBadGateway, "O servidor não confirmou a solicitação. Tente novamente.")
	errBackend          = pkgErrors.NewHTTPError(http.StatusBadGateway, "Não foi possível contatar o servidor de itens. Tente novamente mais tarde.")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var ve *item.ValidationError
	switch {
	case errors.Is(err, item.ErrNotFound):
		return errItemNotFound
	case errors.Is(err, claim.ErrAlreadyClaimed):
		return errAlreadyClaimed
	case errors.Is(err, claim.ErrClaimInFlight), errors.Is(err, claim.ErrStaleAttempt):
		return errClaimInFlight
	case errors.Is(err, claim.ErrClaimNotConfirmed):
		return errClaimUnconfirmed
	case errors.Is(err, query.ErrInvalidSpec):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	// A malformed backend record wraps a ValidationError inside a TransportError,
	// so transport is checked first.
	case item.IsTransport(err):
		return errBackend
	case errors.As(err, &ve):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, ve.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
