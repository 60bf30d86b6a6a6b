package http

import (
	"mime/multipart"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/normalizer"
	"campus-lost-found/internal/item/query"
	"campus-lost-found/internal/model"
	"campus-lost-found/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Categories    []string `form:"category"`
	CategoriesArr []string `form:"category[]"`
	Colors        []string `form:"color"`
	ColorsArr     []string `form:"color[]"`
	Type          string   `form:"type"`
	Sort          string   `form:"sort"`
	Order         string   `form:"order"`
	Cached        bool     `form:"cached"`
}

func (r listReq) toInput() (item.ListInput, error) {
	spec, err := query.ParseSpec(
		append(r.Categories, r.CategoriesArr...),
		append(r.Colors, r.ColorsArr...),
		r.Type, r.Sort, r.Order,
	)
	if err != nil {
		return item.ListInput{}, err
	}
	return item.ListInput{Query: spec, Cached: r.Cached}, nil
}

// ---

type recentReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (r recentReq) toInput() item.RecentInput {
	return item.RecentInput{Limit: r.Limit}
}

// ---

type createReq struct {
	Name        string                `form:"name"        binding:"required,max=255"`
	Category    string                `form:"category"    binding:"max=100"`
	Color       string                `form:"color"       binding:"max=50"`
	Location    string                `form:"location"    binding:"max=255"`
	Description string                `form:"description" binding:"max=2000"`
	Type        string                `form:"type"`
	Date        string                `form:"date"`
	Image       *multipart.FileHeader `form:"image"`
}

func (r createReq) validate() error {
	if r.Type != "" {
		if _, err := normalizer.ParseType(r.Type); err != nil {
			return err
		}
	}
	if r.Image != nil && r.Image.Size > maxImageBytes {
		return &item.ValidationError{Field: "image", Reason: "file too large"}
	}
	return nil
}

func (r createReq) toInput(image *item.ImageUpload) item.CreateInput {
	var itemType model.ItemType
	if r.Type != "" {
		itemType, _ = normalizer.ParseType(r.Type)
	}
	return item.CreateInput{
		Name:        r.Name,
		Category:    r.Category,
		Color:       r.Color,
		Location:    r.Location,
		Description: r.Description,
		Type:        itemType,
		Date:        r.Date,
		Image:       image,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Color        string `json:"color"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	Image        string `json:"image"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	RelativeTime string `json:"relativeTime"`
	IsNew        bool   `json:"isNew"`
	Path         string `json:"path"`
}

func newItemResp(v item.View) itemResp {
	return itemResp{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		Category:     v.Category,
		Color:        v.Color,
		Location:     v.Location,
		Date:         v.Date,
		Image:        v.Image,
		Type:         string(v.Type),
		Status:       string(v.Status),
		StatusLabel:  item.StatusLabel(v.Status),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		RelativeTime: v.RelativeTime,
		IsNew:        v.IsNew,
		Path:         v.Path,
	}
}

func newItemResps(views []item.View) []itemResp {
	out := make([]itemResp, len(views))
	for i, v := range views {
		out[i] = newItemResp(v)
	}
	return out
}

type listResp struct {
	Items        []itemResp         `json:"items"`
	Total        int                `json:"total"`
	Message      string             `json:"message,omitempty"`
	FetchedAt    *response.DateTime `json:"fetchedAt,omitempty"`
	FromSnapshot bool               `json:"fromSnapshot"`
}

func (h *handler) newListResp(out item.ListOutput) listResp {
	resp := listResp{
		Items:        newItemResps(out.Items),
		Total:        out.Total,
		Message:      out.Message,
		FromSnapshot: out.FromSnapshot,
	}
	if !out.FetchedAt.IsZero() {
		at := response.DateTime(out.FetchedAt)
		resp.FetchedAt = &at
	}
	return resp
}

type recentResp struct {
	Items   []itemResp `json:"items"`
	Message string     `json:"message,omitempty"`
}

func (h *handler) newRecentResp(out item.RecentOutput) recentResp {
	return recentResp{Items: newItemResps(out.Items), Message: out.Message}
}

type progressStepResp struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	State  string `json:"state"`
}

type progressResp struct {
	Percent int                `json:"percent"`
	Steps   []progressStepResp `json:"steps"`
}

type detailResp struct {
	Item     itemResp     `json:"item"`
	Claim    string       `json:"claim"`
	Progress progressResp `json:"progress"`
}

func (h *handler) newDetailResp(out item.DetailOutput) detailResp {
	steps := make([]progressStepResp, len(out.Progress.Steps))
	for i, s := range out.Progress.Steps {
		steps[i] = progressStepResp{Status: string(s.Status), Label: s.Label, State: string(s.State)}
	}
	return detailResp{
		Item:     newItemResp(out.Item),
		Claim:    string(out.Claim),
		Progress: progressResp{Percent: out.Progress.Percent, Steps: steps},
	}
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out item.CreateOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type claimResp struct {
	Item  itemResp `json:"item"`
	Kind  string   `json:"kind"`
	State string   `json:"state"`
}

func (h *handler) newClaimResp(out item.ClaimOutput) claimResp {
	return claimResp{Item: newItemResp(out.Item), Kind: string(out.Kind), State: string(out.State)}
}

type catalogResp struct {
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`
}

func (h *handler) newCatalogResp(out item.CatalogOutput) catalogResp {
	return catalogResp{Categories: out.Categories, Colors: out.Colors}
}
