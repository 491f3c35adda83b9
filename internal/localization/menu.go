package localization

import (
	"github.com/zeusync/contentdb/pkg/encoding"
)

// Namespace groups strings under a category label. The label is not part of
// the serialized form.
type Namespace struct {
	category string
}

func NewNamespace(category string) Namespace {
	return Namespace{category: category}
}

func (n Namespace) Category() string { return n.category }

// MenuNamespace is a namespace for one menu of the editor menu bar.
type MenuNamespace struct {
	Namespace `json:"-" yaml:"-"`
}

func NewMenuNamespace(category string) MenuNamespace {
	return MenuNamespace{Namespace: NewNamespace(category)}
}

// FileMenuNamespace holds the strings of the File menu. A nil string is
// left out of serialized output, so only strings that are set get written.
type FileMenuNamespace struct {
	MenuNamespace `json:"-" yaml:"-"`

	PackageGame *LocalizedString `json:"PackageGame,omitempty" yaml:"PackageGame,omitempty"`
}

func NewFileMenuNamespace() *FileMenuNamespace {
	return &FileMenuNamespace{
		MenuNamespace: NewMenuNamespace("File"),
		PackageGame:   ptr("Package Game"),
	}
}

// MenuBar is the root of the menu bar strings.
type MenuBar struct {
	File *FileMenuNamespace `json:"File" yaml:"File"`
}

func NewMenuBar() *MenuBar {
	return &MenuBar{File: NewFileMenuNamespace()}
}

// LoadOverrides decodes a strings document over bar. Keys missing from the
// document keep their current value; an explicit null clears the string.
func LoadOverrides(data []byte, codec encoding.Codec, bar *MenuBar) error {
	return codec.Unmarshal(data, bar)
}

// Marshal encodes bar with codec.
func Marshal(bar *MenuBar, codec encoding.Codec) ([]byte, error) {
	return codec.Marshal(bar)
}
