package physics

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/oerror"
)

// MaxLayers is the number of distinct collision layers a LayerMask can hold.
const MaxLayers = 32

// Layer is the index of a collision layer.
type Layer uint8

// LayerMask is a bit set of layers. A zero mask matches nothing.
type LayerMask uint32

// MaskOf returns a mask containing the layers passed.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// Has returns true if the layer is part of the mask.
func (m LayerMask) Has(l Layer) bool {
	return m&(1<<l) != 0
}

// Layers maps layer names to layer indices. Names are kept in registration order.
type Layers struct {
	names *orderedmap.OrderedMap[string, Layer]
}

// DefaultLayerName is the layer every World registers first.
const DefaultLayerName = "default"

// NewLayers returns a registry that already contains the default layer at index 0.
func NewLayers(names ...string) *Layers {
	l := &Layers{names: orderedmap.NewOrderedMap[string, Layer]()}
	l.names.Set(DefaultLayerName, 0)
	for _, n := range names {
		_, _ = l.Register(n)
	}
	return l
}

// Register adds a named layer and returns its index. Registering an existing name returns the
// existing index.
func (l *Layers) Register(name string) (Layer, error) {
	if layer, ok := l.names.Get(name); ok {
		return layer, nil
	}
	if l.names.Len() >= MaxLayers {
		return 0, oerror.New("cannot register layer %q: all %d layers are in use", name, MaxLayers)
	}
	layer := Layer(l.names.Len())
	l.names.Set(name, layer)
	return layer, nil
}

// Layer returns the index of a named layer.
func (l *Layers) Layer(name string) (Layer, bool) {
	return l.names.Get(name)
}

// Mask resolves every name into a LayerMask. Unknown names are reported as an error.
func (l *Layers) Mask(names ...string) (LayerMask, error) {
	var m LayerMask
	for _, n := range names {
		layer, ok := l.names.Get(n)
		if !ok {
			return 0, oerror.New("unknown layer %q", n)
		}
		m |= MaskOf(layer)
	}
	return m, nil
}

// Names returns the registered layer names in registration order.
func (l *Layers) Names() []string {
	return l.names.Keys()
}
