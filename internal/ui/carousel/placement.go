package carousel

// Placement is what the renderer receives for one item.
type Placement struct {
	Index      int
	Scale      float64
	TranslateX float64
	Active     bool
	Hovered    bool
}

// Emphasized reports whether the item is drawn above its natural size.
func (p Placement) Emphasized() bool {
	return p.Scale > 1
}

// placeParams gathers the inputs of place.
type placeParams struct {
	n            int
	active       int
	hovered      int // -1 when nothing is hovered
	offset       float64
	scaleFactor  float64
	scaleOnHover bool
	measured     bool
}

// place computes one Placement per item. Until the layout is measured every
// item is unscaled and unshifted.
func place(p placeParams) []Placement {
	out := make([]Placement, p.n)
	for i := range out {
		pl := Placement{
			Index:   i,
			Scale:   1,
			Active:  i == p.active,
			Hovered: i == p.hovered,
		}
		if p.measured {
			pl.TranslateX = p.offset
			if pl.Active || (p.scaleOnHover && pl.Hovered) {
				pl.Scale = p.scaleFactor
			}
		}
		out[i] = pl
	}
	return out
}
