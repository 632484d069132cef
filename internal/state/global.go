package state

import (
	"context"
	"fmt"

	config_global "github.com/accessfs/gsxa/internal/config"
	"github.com/accessfs/gsxa/internal/display"
	"github.com/accessfs/gsxa/internal/gsxpath"
	"github.com/accessfs/gsxa/internal/input"
	"github.com/accessfs/gsxa/internal/settings"
	"github.com/accessfs/gsxa/internal/simbus"
	"github.com/accessfs/gsxa/internal/sound"
	"github.com/accessfs/gsxa/internal/speech"
	"github.com/accessfs/gsxa/log2"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
)

type Global struct {
	Alive        *alive.Alive
	BuildVersion string
	Config       *config_global.Config
	Log          *log2.Log
	Bus          simbus.Buser
	Display      *display.Display
	Speech       *speech.Speech
	Settings     *settings.Store
	Input        *input.Dispatch
	Paths        gsxpath.Paths
}

const ContextKey = "run/state-global"

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global actual=%#v", ContextKey, v))
}

func NewContext(log *log2.Log, bus simbus.Buser) (context.Context, *Global) {
	g := &Global{
		Alive: alive.NewAlive(),
		Log:   log,
		Bus:   bus,
	}
	ctx := context.WithValue(context.Background(), ContextKey, g) //nolint:staticcheck
	return ctx, g
}

func (g *Global) Init(ctx context.Context, cfg *config_global.Config) error {
	g.Config = cfg
	g.Log.SetLevel(cfg.Level())
	g.Log.Infof("build version=%s", g.BuildVersion)

	g.Display = display.New(g.Log)
	g.Input = input.NewDispatch(g.Log, g.Alive.StopChan())
	sound.Init(cfg.Sound, g.Log)
	g.Speech = speech.New(g.Log, speech.NewOutputer(*cfg.Speech, g.Log))
	if g.Settings == nil {
		g.Settings = settings.NewStore(g.Log)
	}

	// restore speak toggles; a failing engine force-disables and persists
	saved := g.Settings.Load()
	effective := settings.Settings{
		SpeakMenu:    g.Speech.EnableMenu(saved.SpeakMenu),
		SpeakTooltip: g.Speech.EnableTooltip(saved.SpeakTooltip),
	}
	if effective != saved {
		g.Settings.Save(effective)
	}
	return nil
}

// ResolvePaths runs once after the bus connects and again on reconnect.
func (g *Global) ResolvePaths() error {
	p, err := gsxpath.Resolve(g.Config.GsxRoot)
	if err != nil {
		g.Paths = gsxpath.Paths{}
		return errors.Annotate(err, "resolve gsx paths")
	}
	g.Paths = p
	g.Log.Debugf("gsx root=%s menu=%s tooltip=%s", p.Root, p.MenuFile, p.TooltipFile)
	return nil
}

func (g *Global) Error(err error, args ...interface{}) {
	if err != nil {
		if len(args) > 0 {
			msg := args[0].(string)
			err = errors.Annotatef(err, msg, args[1:]...)
		}
		g.Log.Error(err)
	}
}

func (g *Global) Stop() { g.Alive.Stop() }
