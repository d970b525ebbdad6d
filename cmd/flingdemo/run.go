package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/fling"
	"github.com/phanxgames/fling/ebiteninput"
	"github.com/phanxgames/fling/ecs"
	"github.com/phanxgames/fling/journal"
)

const deckSize = 5

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window with a deck of swipeable cards",
	Long: `Open a window showing a deck of cards. Drag the top card past a border
or fling it to send it away; tap a card edge to trigger a zone click.
Arrow keys dismiss the top card without a gesture.`,
	Args: cobra.NoArgs,
	RunE: runDeck,
}

var cardColors = []color.RGBA{
	{R: 0xe0, G: 0x6c, B: 0x75, A: 0xff},
	{R: 0x98, G: 0xc3, B: 0x79, A: 0xff},
	{R: 0x61, G: 0xaf, B: 0xef, A: 0xff},
	{R: 0xe5, G: 0xc0, B: 0x7b, A: 0xff},
	{R: 0xc6, G: 0x78, B: 0xdd, A: 0xff},
}

type deckCard struct {
	card *fling.Card
	c    *fling.Controller
	face *ebiten.Image
}

// Game is the ebiten game running the deck.
type Game struct {
	cfg    fling.Config
	logger *log.Logger
	world  donburi.World
	anim   *fling.TweenAnimator
	source *ebiteninput.Source

	cards   []*deckCard // bottom to top
	exited  []*fling.Card
	dealt   int
	status  string
	scrollX float64
	scrollY float64
}

func runDeck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	g := &Game{
		cfg:    cfg,
		logger: logger,
		world:  donburi.NewWorld(),
		anim:   fling.NewTweenAnimator(cfg.OvershootTension),
		source: ebiteninput.NewSource(),
		status: "swipe a card",
	}

	var jr *journal.Journal
	if flagDBPath != "" {
		jr, err = journal.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer jr.Close()
		jr.SetLogger(logger)
	}

	ecs.SwipeEventType.Subscribe(g.world, func(w donburi.World, e fling.SwipeEvent) {
		if jr != nil {
			jr.EmitEvent(e)
		}
		g.onEvent(e)
	})

	for i := 0; i < deckSize; i++ {
		if err := g.deal(); err != nil {
			return err
		}
	}

	ebiten.SetWindowTitle("fling: card deck")
	ebiten.SetWindowSize(int(cfg.ContainerWidth), int(cfg.ContainerHeight))
	return ebiten.RunGame(g)
}

// deal adds a card at the bottom of the deck.
func (g *Game) deal() error {
	g.dealt++
	name := fmt.Sprintf("card-%d", g.dealt)
	card := newCenteredCard(g.cfg, name)

	c, err := fling.NewController(card, g.anim, name, g.cfg)
	if err != nil {
		return err
	}
	c.SetEventStore(ecs.NewDonburiStore(g.world))
	c.SetListener(fling.Callbacks{
		Exited: func(_ fling.Vec2, _ any, _ fling.Edge) {
			g.exited = append(g.exited, card)
		},
	})
	if flagDebug {
		c.SetLogger(fling.NewDebugLogger(os.Stderr))
	}

	face := ebiten.NewImage(int(card.Width), int(card.Height))
	face.Fill(cardColors[g.dealt%len(cardColors)])

	g.cards = append([]*deckCard{{card: card, c: c, face: face}}, g.cards...)
	g.source.BindBottom(card, c)
	return nil
}

func (g *Game) top() *deckCard {
	if len(g.cards) == 0 {
		return nil
	}
	return g.cards[len(g.cards)-1]
}

func (g *Game) onEvent(e fling.SwipeEvent) {
	switch e.Type {
	case fling.EventExit:
		g.status = fmt.Sprintf("%v left through the %s edge", e.Data, e.Edge)
		g.logger.Info("exit", "card", e.Data, "edge", e.Edge)
	case fling.EventZoneClick:
		g.status = fmt.Sprintf("%v clicked on its %s zone", e.Data, e.Zone)
		g.logger.Info("zone click", "card", e.Data, "zone", e.Zone)
	case fling.EventScroll:
		g.scrollX, g.scrollY = e.ProgressX, e.ProgressY
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.source.Update(time.Now())
	g.handleKeys()
	g.anim.Update(1 / float32(ebiten.TPS()))
	ecs.SwipeEventType.ProcessEvents(g.world)

	for _, card := range g.exited {
		g.remove(card)
		if err := g.deal(); err != nil {
			return err
		}
	}
	g.exited = g.exited[:0]
	return nil
}

func (g *Game) handleKeys() {
	top := g.top()
	if top == nil {
		return
	}
	keys := map[ebiten.Key]fling.Edge{
		ebiten.KeyArrowLeft:  fling.EdgeLeft,
		ebiten.KeyArrowRight: fling.EdgeRight,
		ebiten.KeyArrowUp:    fling.EdgeTop,
		ebiten.KeyArrowDown:  fling.EdgeBottom,
	}
	for k, edge := range keys {
		if inpututil.IsKeyJustPressed(k) && !top.c.Dismiss(edge) {
			g.logger.Debug("dismiss refused", "edge", edge, "state", top.c.State())
		}
	}
}

func (g *Game) remove(card *fling.Card) {
	for i, dc := range g.cards {
		if dc.card == card {
			g.source.Unbind(card)
			dc.face.Deallocate()
			g.cards = append(g.cards[:i], g.cards[i+1:]...)
			return
		}
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1e, G: 0x1e, B: 0x28, A: 0xff})
	for _, dc := range g.cards {
		ebiteninput.DrawCard(screen, dc.card, dc.face, nil)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nscroll %.2f %.2f\naxes %s",
		g.status, g.scrollX, g.scrollY, g.cfg.Axes))
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ContainerWidth), int(g.cfg.ContainerHeight)
}
