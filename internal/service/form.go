package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"

	"github.com/kapu/portfolio-client-go/internal/domain"
)

// DefaultFileField is the multipart field name used for uploaded images.
const DefaultFileField = "images"

type formField struct {
	name  string
	value string
}

// FilePart is one binary attachment of a multipart payload.
type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// Form is an ordered multipart payload: text fields followed by file parts.
// Encoding never modifies the form, so a Form can be resubmitted as is.
type Form struct {
	fields []formField
	files  []FilePart
}

func NewForm() *Form {
	return &Form{}
}

// Add appends a text field. Repeated names are kept in insertion order.
func (f *Form) Add(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddJSON appends a text field holding the JSON encoding of v.
func (f *Form) AddJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode form field %q: %w", name, err)
	}
	f.Add(name, string(data))
	return nil
}

func (f *Form) AddFile(part FilePart) *Form {
	f.files = append(f.files, part)
	return f
}

// Value returns the first value stored under name.
func (f *Form) Value(name string) (string, bool) {
	for _, field := range f.fields {
		if field.name == name {
			return field.value, true
		}
	}
	return "", false
}

func (f *Form) Len() int {
	return len(f.fields) + len(f.files)
}

// Encode renders the payload and returns it with its multipart content type
// (including the boundary).
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		name := file.Field
		if name == "" {
			name = DefaultFileField
		}
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
			"name":     name,
			"filename": file.FileName,
		}))
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %q: %w", file.FileName, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("write file part %q: %w", file.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// ProjectForm builds the management form for a project. Scalar fields are sent
// as text, nested lists as JSON text fields, images already stored on the
// backend under "existingImages" and new uploads as file parts.
func ProjectForm(p domain.Project, uploads ...FilePart) (*Form, error) {
	f := NewForm().
		Add("name", p.Name).
		Add("summary", p.Summary).
		Add("description", p.Description).
		Add("stack", p.Stack)

	lists := []struct {
		name  string
		value any
	}{
		{"technologies", nonNil(p.Technologies)},
		{"collaborators", nonNil(p.Collaborators)},
		{"repositories", nonNil(p.Repositories)},
		{"existingImages", nonNil(p.Images)},
	}
	for _, l := range lists {
		if err := f.AddJSON(l.name, l.value); err != nil {
			return nil, err
		}
	}

	for _, upload := range uploads {
		f.AddFile(upload)
	}
	return f, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
