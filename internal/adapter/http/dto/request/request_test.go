package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractSubmitRequest_NonStringValuesBecomeEmpty(t *testing.T) {
	var r ContractSubmitRequest
	err := json.Unmarshal([]byte(`{"estimateId":12,"token":{"a":1},"planKey":"take","slots":["a",3,null," b "]}`), &r)
	require.NoError(t, err)

	s := r.ToSubmission()
	assert.Equal(t, "", s.EstimateID)
	assert.Equal(t, "", s.Token)
	assert.Equal(t, "take", s.PlanKey)
	assert.Equal(t, []string{"a", "", "", " b "}, s.Slots)
}

func TestContractSubmitRequest_SlotsNotArray(t *testing.T) {
	var r ContractSubmitRequest
	require.NoError(t, json.Unmarshal([]byte(`{"slots":"2024-06-01 AM"}`), &r))
	assert.Empty(t, r.ToSubmission().Slots)
}

func TestLiffLinkRequest_ToLink(t *testing.T) {
	var r LiffLinkRequest
	require.NoError(t, json.Unmarshal([]byte(`{"token":"tok","lineUserId":"U1","displayName":"山田","pictureUrl":5}`), &r))

	l := r.ToLink()
	assert.Equal(t, "tok", l.Token)
	assert.Equal(t, "U1", l.LineUserID)
	require.NotNil(t, l.DisplayName)
	assert.Equal(t, "山田", *l.DisplayName)
	assert.Nil(t, l.PictureURL)
}

func buildForm(t *testing.T, fields map[string][]string, files map[string]string) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	for name, ct := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("data-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form
}

func TestParseEstimateForm(t *testing.T) {
	form := buildForm(t, map[string][]string{
		FieldCustomerName:  {"山田 太郎"},
		FieldCustomerPhone: {"090-0000-0000"},
		FieldPlans:         {`[{"key":"take","label":"","description":"d","price":120000},{"key":"ume","price":"80000"}]`},
		FieldKeepImages:    {"https://cdn/a.jpg", "https://cdn/b.jpg"},
	}, map[string]string{"roof.png": "image/png"})

	in, err := ParseEstimateForm(form)
	require.NoError(t, err)

	assert.Equal(t, "山田 太郎", in.CustomerName)
	assert.Equal(t, "090-0000-0000", in.CustomerPhone)
	require.Len(t, in.Plans, 2)
	assert.Equal(t, "take", in.Plans[0].Key)
	assert.Equal(t, "120000", in.Plans[0].Price)
	assert.Equal(t, "80000", in.Plans[1].Price)
	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, in.KeepImages)

	require.Len(t, in.Images, 1)
	assert.Equal(t, "roof.png", in.Images[0].Filename)
	rc, err := in.Images[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "data-roof.png", string(body))
}

func TestParseEstimateForm_Errors(t *testing.T) {
	t.Run("plans not json", func(t *testing.T) {
		form := buildForm(t, map[string][]string{FieldPlans: {"take"}}, nil)
		_, err := ParseEstimateForm(form)
		if !errors.Is(err, ErrInvalidPlansField) {
			t.Fatalf("expected ErrInvalidPlansField, got %v", err)
		}
	})

	t.Run("non image upload", func(t *testing.T) {
		form := buildForm(t, nil, map[string]string{"notes.pdf": "application/pdf"})
		_, err := ParseEstimateForm(form)
		if !errors.Is(err, ErrUnsupportedImage) {
			t.Fatalf("expected ErrUnsupportedImage, got %v", err)
		}
	})
}
