package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-renderer/internal/render/print"
	"github.com/jonathan/resume-renderer/internal/types"
)

type stubTemplate struct {
	id string
}

func (s *stubTemplate) ID() string                 { return s.id }
func (s *stubTemplate) Name() string               { return s.id }
func (s *stubTemplate) Capabilities() Capabilities { return Capabilities{Columns: 1} }
func (s *stubTemplate) RenderScreen(_ *types.ResumeData) (string, error) {
	return "<html></html>", nil
}
func (s *stubTemplate) RenderPrint(_ *types.ResumeData) (*print.Document, error) {
	return &print.Document{}, nil
}

func TestLookup_RegisteredTemplate(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTemplate{id: "ats"})

	got, err := r.Lookup("ats")
	require.NoError(t, err)
	assert.Equal(t, "ats", got.ID())
}

func TestLookup_UnknownTemplate(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTemplate{id: "ats"})

	_, err := r.Lookup("nope")
	require.Error(t, err)

	var unknown *UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.ID)
	assert.Contains(t, unknown.Error(), "ats")
}

func TestLookup_EmptyRegistry(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("ats")
	var unknown *UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, unknown.Error(), "no templates registered")
}

func TestIDs_Sorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTemplate{id: "minimalist-modern"})
	r.Register(&stubTemplate{id: "ats"})
	r.Register(&stubTemplate{id: "classic"})

	assert.Equal(t, []string{"ats", "classic", "minimalist-modern"}, r.IDs())
}

func TestAll_OrderedByID(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTemplate{id: "b"})
	r.Register(&stubTemplate{id: "a"})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID())
	assert.Equal(t, "b", all[1].ID())
}

func TestRegister_ReplacesSameID(t *testing.T) {
	r := NewRegistry()
	first := &stubTemplate{id: "ats"}
	second := &stubTemplate{id: "ats"}
	r.Register(first)
	r.Register(second)

	got, err := r.Lookup("ats")
	require.NoError(t, err)
	assert.Same(t, second, got.(*stubTemplate))
	assert.Len(t, r.IDs(), 1)
}
