package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fling"
)

// CardGeoM converts the card's screen transform into an ebiten.GeoM that maps
// an image of the card's size onto its rotated screen rectangle.
func CardGeoM(card *fling.Card) ebiten.GeoM {
	t := card.ScreenTransform()
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// DrawCard draws img stretched over the card. img is scaled to the card
// size first, so any face image works.
func DrawCard(dst *ebiten.Image, card *fling.Card, img *ebiten.Image, op *ebiten.DrawImageOptions) {
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}
	b := img.Bounds()
	op.GeoM.Reset()
	if b.Dx() > 0 && b.Dy() > 0 {
		op.GeoM.Scale(card.Width/float64(b.Dx()), card.Height/float64(b.Dy()))
	}
	op.GeoM.Concat(CardGeoM(card))
	dst.DrawImage(img, op)
}
