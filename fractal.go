// fractal.go - Pass-through wrapper for the Fractal Sound tracker driver

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░


(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MegaDriveSound
License: GPLv3 or later
*/

package mdsound

import "encoding/binary"

// The Fractal Sound tracker runs as resident driver code on the main CPU
// side rather than behind the Z80 mailbox protocol. This layer treats it as
// a black box: every operation is a thin pass-through to the resident
// driver entry points, plus a handful of channel flag helpers that operate
// on host-visible tracker state.

// FractalDriver is the set of resident driver entry points. Implementations
// wrap the actual tracker binary however it is hosted.
type FractalDriver interface {
	// Init hands the tracker its sample decompression hook.
	Init(decompress func(src, dst []byte))
	// Sound runs one tracker tick. Call once per frame.
	Sound()
	// Queue schedules a sound effect by id.
	Queue(sound uint16)

	SetMasterFraction(frac int16)
	SetFractionFlag()
	SetMasterVolume(main, psg int16)
	SetVolumeFlag()
	SetMasterTempo(tempo int16)
	UpdateTempo()
}

// Fractal channel flag bits.
const (
	FRACTAL_TRACK_FLAG_VOLUME_UPDATE = 1 << 1
	FRACTAL_MODE_FLAG_MUTED          = 1 << 0
)

// FractalChannelMusic is the host-visible per-channel tracker state touched
// by the mute helpers. TrackFlags carries dirty bits the tracker consumes
// on its next tick; ModeFlags carries persistent playback modes.
type FractalChannelMusic struct {
	TrackFlags uint8
	ModeFlags  uint8
}

func (c *FractalChannelMusic) IsMuted() bool {
	return c.ModeFlags&FRACTAL_MODE_FLAG_MUTED != 0
}

func (c *FractalChannelMusic) Mute() {
	c.TrackFlags |= FRACTAL_TRACK_FLAG_VOLUME_UPDATE
	c.ModeFlags |= FRACTAL_MODE_FLAG_MUTED
}

func (c *FractalChannelMusic) Unmute() {
	c.TrackFlags |= FRACTAL_TRACK_FLAG_VOLUME_UPDATE
	c.ModeFlags &^= FRACTAL_MODE_FLAG_MUTED
}

func (c *FractalChannelMusic) ToggleMute() {
	c.TrackFlags |= FRACTAL_TRACK_FLAG_VOLUME_UPDATE
	c.ModeFlags ^= FRACTAL_MODE_FLAG_MUTED
}

// FractalPlayer exposes the tracker operations behind a stable surface.
type FractalPlayer struct {
	drv FractalDriver
}

func NewFractalPlayer(drv FractalDriver) *FractalPlayer {
	return &FractalPlayer{drv: drv}
}

// Init initialises the tracker with the default decompressor.
func (p *FractalPlayer) Init() {
	p.drv.Init(FractalDecompress)
}

// InitWith initialises the tracker with a custom decompression hook.
func (p *FractalPlayer) InitWith(decompress func(src, dst []byte)) {
	p.drv.Init(decompress)
}

// Update runs one tracker tick. Call once per frame.
func (p *FractalPlayer) Update() {
	p.drv.Sound()
}

// Queue schedules a sound effect.
func (p *FractalPlayer) Queue(sound uint16) {
	p.drv.Queue(sound)
}

func (p *FractalPlayer) SetMasterFraction(frac int16) {
	p.drv.SetMasterFraction(frac)
}

func (p *FractalPlayer) ForceFractionUpdate() {
	p.drv.SetFractionFlag()
}

func (p *FractalPlayer) SetMasterVolume(main, psg int16) {
	p.drv.SetMasterVolume(main, psg)
}

func (p *FractalPlayer) ForceVolumeUpdate() {
	p.drv.SetVolumeFlag()
}

func (p *FractalPlayer) SetMasterTempo(tempo int16) {
	p.drv.SetMasterTempo(tempo)
}

func (p *FractalPlayer) UpdateTempo() {
	p.drv.UpdateTempo()
}

// FractalDecompress is the stock sample "decompressor": a counter-prefixed
// raw copy. The first big-endian word of src holds the byte count, the
// payload follows.
func FractalDecompress(src, dst []byte) {
	count := int(binary.BigEndian.Uint16(src))
	copy(dst[:count], src[2:2+count])
}
