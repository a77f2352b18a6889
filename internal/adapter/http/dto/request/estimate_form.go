package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"mitsumori_tsuikyaku/internal/usecase"
)

// Multipart field names of the estimate editor form.
const (
	FieldCustomerName       = "customerName"
	FieldCustomerPhone      = "customerPhone"
	FieldGalleryDescription = "galleryDescription"
	FieldPlans              = "plans"
	FieldKeepImages         = "keepImages"
	FieldImages             = "images"
)

var (
	ErrInvalidPlansField = errors.New("plans must be a JSON array of plan cards")
	ErrUnsupportedImage  = errors.New("gallery files must be images")
)

// PlanCard is one element of the "plans" field. Price may be sent as a JSON
// string or number.
type PlanCard struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
}

func (p PlanCard) priceText() string {
	raw := bytes.TrimSpace(p.Price)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return string(raw)
}

// ParseEstimateForm converts the editor's multipart form into authoring input.
// Files are opened lazily by the upload step.
func ParseEstimateForm(form *multipart.Form) (usecase.EstimateInput, error) {
	in := usecase.EstimateInput{
		CustomerName:       formValue(form, FieldCustomerName),
		CustomerPhone:      formValue(form, FieldCustomerPhone),
		GalleryDescription: formValue(form, FieldGalleryDescription),
		KeepImages:         form.Value[FieldKeepImages],
	}

	if raw := strings.TrimSpace(formValue(form, FieldPlans)); raw != "" {
		var cards []PlanCard
		if err := json.Unmarshal([]byte(raw), &cards); err != nil {
			return usecase.EstimateInput{}, ErrInvalidPlansField
		}
		in.Plans = make([]usecase.PlanInput, 0, len(cards))
		for _, c := range cards {
			in.Plans = append(in.Plans, usecase.PlanInput{
				Key:         c.Key,
				Label:       c.Label,
				Description: c.Description,
				Price:       c.priceText(),
			})
		}
	}

	for _, fh := range form.File[FieldImages] {
		ct := fh.Header.Get("Content-Type")
		if ct != "" && !strings.HasPrefix(ct, "image/") {
			return usecase.EstimateInput{}, ErrUnsupportedImage
		}
		in.Images = append(in.Images, usecase.ImageUpload{
			Filename:    fh.Filename,
			ContentType: ct,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return in, nil
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
