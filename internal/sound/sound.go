package sound

import (
	"io"
	"os"

	"github.com/accessfs/gsxa/helpers"
	"github.com/accessfs/gsxa/log2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const sampleRate = 32000

// Audio cues around the synthesized speech: a short earcon is faster to
// recognize than a spoken status word.
type Sound struct {
	conf         *Config
	log          *log2.Log
	audioContext *audio.Context
	menuOpen     soundStream
	menuClose    soundStream
	choice       soundStream
	fault        soundStream
}

type soundStream struct {
	Stream []byte
	volume float64
}

// volume uses fixed point. 12 = 1.2
type Config struct {
	Disabled        bool   `hcl:"disabled,optional"`
	MenuOpen        string `hcl:"menu_open,optional"`
	MenuOpenVolume  int    `hcl:"menu_open_volume,optional"`
	MenuClose       string `hcl:"menu_close,optional"`
	MenuCloseVolume int    `hcl:"menu_close_volume,optional"`
	Choice          string `hcl:"choice,optional"`
	ChoiceVolume    int    `hcl:"choice_volume,optional"`
	Fault           string `hcl:"fault,optional"`
	FaultVolume     int    `hcl:"fault_volume,optional"`
}

var s Sound

func Init(conf *Config, log *log2.Log) {
	s.conf = conf
	if conf.Disabled {
		return
	}
	s.log = log
	s.audioContext = audio.NewContext(sampleRate)
	go func() {
		s.menuOpen.prepare("menu open", conf.MenuOpen, conf.MenuOpenVolume)
		s.menuClose.prepare("menu close", conf.MenuClose, conf.MenuCloseVolume)
		s.choice.prepare("choice", conf.Choice, conf.ChoiceVolume)
		s.fault.prepare("fault", conf.Fault, conf.FaultVolume)
	}()
	s.log.Info("sound module started")
}

func MenuOpen()  { playStream(&s.menuOpen) }
func MenuClose() { playStream(&s.menuClose) }
func Choice()    { playStream(&s.choice) }
func Fault()     { playStream(&s.fault) }

func (ss *soundStream) prepare(name string, file string, volume int) {
	if file == "" {
		return
	}
	var err error
	ss.Stream, err = loadMp3Stream(file)
	if err != nil {
		s.log.Errorf("load sound %s (%+v)", name, err)
	}
	ss.volume = float64(helpers.ConfigDefaultInt(volume, 10)) / 10
}

func loadMp3Stream(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	bs, err := mp3.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(bs)
}

func playStream(ss *soundStream) {
	if s.conf == nil || s.conf.Disabled || len(ss.Stream) == 0 {
		return
	}
	p := s.audioContext.NewPlayerFromBytes(ss.Stream)
	p.SetVolume(ss.volume)
	p.Play()
}
