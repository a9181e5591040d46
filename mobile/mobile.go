// Package mobile is the ebitenmobile binding entry:
//
//	ebitenmobile bind -target android -javapkg com.lixenwraith.dragtarget -o dragtarget.aar ./mobile
//
// The viewport is the configured logical window, scaled by Ebitengine to the device screen.
// Sound is off: the mobile view owns its audio session.
package mobile

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/lixenwraith/drag-target/audio"
	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/gui"
	"github.com/lixenwraith/drag-target/vmath"
)

func init() {
	g, err := gui.New(config.Default(), vmath.NewFastRand(uint64(time.Now().UnixNano())), audio.NopPlayer{})
	if err != nil {
		panic(err)
	}
	mobile.SetGame(g)
}

// Dummy forces gomobile to export this package
func Dummy() {}
