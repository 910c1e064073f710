package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/imagexplorer/internal/catalog"
	"github.com/muurk/imagexplorer/internal/navigator"
	"github.com/muurk/imagexplorer/internal/resources"
)

func TestComposeResolvesBothElements(t *testing.T) {
	nav := navigator.New(catalog.Default())

	f := Compose(nav.State(), resources.DefaultBundle(), 32, 10)

	assert.Equal(t, "ComPro Professionals", f.Caption)
	assert.True(t, f.HasPicture())
	assert.Equal(t, "1 / 5", f.Position())
}

func TestComposeOmitsUnsetElements(t *testing.T) {
	bundle := resources.DefaultBundle()

	tests := []struct {
		name        string
		state       navigator.ViewState
		wantCaption bool
		wantPicture bool
	}{
		{
			name:        "unset title",
			state:       navigator.ViewState{Image: catalog.ImageFriends, Count: 1},
			wantPicture: true,
		},
		{
			name:        "unset image",
			state:       navigator.ViewState{Title: catalog.TitleFriends, Count: 1},
			wantCaption: true,
		},
		{
			name:  "both unset",
			state: navigator.ViewState{Count: 1},
		},
		{
			name:  "unresolvable references",
			state: navigator.ViewState{Title: "nope", Image: "nope", Count: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Compose(tt.state, bundle, 32, 10)
			assert.Equal(t, tt.wantCaption, f.HasCaption())
			assert.Equal(t, tt.wantPicture, f.HasPicture())
		})
	}
}

func TestComposeOmitsPictureWithoutRoom(t *testing.T) {
	state := navigator.ViewState{Title: catalog.TitleFriends, Image: catalog.ImageFriends, Count: 5}

	f := Compose(state, resources.DefaultBundle(), 0, 0)
	assert.False(t, f.HasPicture())
	assert.True(t, f.HasCaption())
}

func TestRenderCardSkipsMissingParts(t *testing.T) {
	out := RenderCard(Frame{Caption: "Friends", Index: 3, Count: 5}, true, 60)
	assert.Contains(t, out, "Friends")
	assert.Contains(t, out, "4 / 5")
	assert.NotContains(t, out, resources.HalfBlock)

	out = RenderCard(Frame{Caption: "Friends", Index: 3, Count: 5}, false, 60)
	assert.NotContains(t, out, "4 / 5")
}

func TestRenderCatalog(t *testing.T) {
	items := []catalog.Item{
		{Title: catalog.TitleFriends, Image: catalog.ImageFriends},
		{Title: catalog.Unset, Image: catalog.ImageGraduation},
	}

	out := RenderCatalog(items, resources.DefaultBundle(), 1)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Friends")
	assert.Contains(t, lines[1], "(no caption)")
	assert.Contains(t, lines[1], "unset")
	assert.Contains(t, lines[1], CurrentMarker)
	assert.NotContains(t, lines[0], CurrentMarker)
}

func TestPrinterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(60)

	p.PrintHeader("Catalog", "imagexplorer list", Param{Key: "Items", Value: "5"})
	p.PrintError("Load failed", errors.New("boom"), []string{"try again"})

	out := buf.String()
	assert.Contains(t, out, "CATALOG")
	assert.Contains(t, out, "imagexplorer list")
	assert.Contains(t, out, "Items:")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "try again")
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, ClampWidth(10))
	assert.Equal(t, 70, ClampWidth(70))
	assert.Equal(t, MaxContentWidth, ClampWidth(500))
}
