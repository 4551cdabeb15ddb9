package ui

// Order is the coarse z-order of a paint layer. Within one Order, areas
// stack in the order managed by Memory (click brings to front).
type Order int

const (
	// OrderBackground paints behind everything.
	OrderBackground Order = iota
	// OrderMiddle is the default layer for panels and widgets.
	OrderMiddle
	// OrderForeground paints above panels: menus, popups, combo lists.
	OrderForeground
	// OrderTooltip paints above menus and never captures the pointer.
	OrderTooltip
	// OrderDebug paints on top of everything.
	OrderDebug
	numOrders
)

// LayerId identifies one paint layer: an order class plus the id of the
// area owning it. The default layer has Id IdNil.
type LayerId struct {
	Order Order
	Id    Id
}

// BackgroundLayer returns the shared background layer.
func BackgroundLayer() LayerId {
	return LayerId{Order: OrderBackground}
}

// DefaultLayer returns the layer ordinary widgets paint to.
func DefaultLayer() LayerId {
	return LayerId{Order: OrderMiddle}
}

// DebugLayer returns the topmost layer.
func DebugLayer() LayerId {
	return LayerId{Order: OrderDebug}
}

// AllowsInteraction reports whether widgets on this layer can be hovered.
// Tooltips and debug overlays never capture the pointer.
func (l LayerId) AllowsInteraction() bool {
	return l.Order != OrderTooltip && l.Order != OrderDebug
}
