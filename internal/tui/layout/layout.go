package layout

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Sizeable is implemented by components that can be resized by their parent.
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
	GetSize() (int, int)
}

// Bindings is implemented by components that contribute to the help overlay.
type Bindings interface {
	BindingKeys() []key.Binding
}

// KeyMapToSlice flattens a struct of key.Binding fields into a slice.
func KeyMapToSlice(t any) (bindings []key.Binding) {
	typ := reflect.TypeOf(t)
	if typ.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < typ.NumField(); i++ {
		v := reflect.ValueOf(t).Field(i)
		if v.Type() == reflect.TypeOf(key.Binding{}) {
			bindings = append(bindings, v.Interface().(key.Binding))
		}
	}
	return
}
