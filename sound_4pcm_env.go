// sound_4pcm_env.go - Four channel 8-bit signed PCM driver with volume envelopes

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

// PCM4EnvPlayer drives the 4 channel PCM personality with per-channel
// volume: same mixing as PCM4 plus a 16 level gain table, one byte per
// channel at a fixed offset above the parameter blocks.
type PCM4EnvPlayer struct {
	z80 *Z80Ctrl
}

// Volume values carry 4 significant bits. Out of range levels are masked,
// not clamped: SetVolume(ch, 200) lands as 200 & 0x0F = 8.
const PCM4_ENV_VOLUME_MASK = 0x0F

func NewPCM4EnvPlayer(z *Z80Ctrl) *PCM4EnvPlayer {
	return &PCM4EnvPlayer{z80: z}
}

// IsPlaying returns the subset of mask whose channels are currently
// playing.
func (p *PCM4EnvPlayer) IsPlaying(mask uint8) uint8 {
	p.z80.LoadDriver(Z80_DRIVER_4PCM_ENV, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	playing := bus.Read8(Z80_DRV_STATUS) & (mask << Z80_DRV_STAT_PLAYING_SFT)
	bus.ReleaseBus()

	return playing
}

// StartPlay starts a sample on the given channel, or on the first free one
// with SOUND_PCM_CH_AUTO. A sample already playing on the resolved channel
// is superseded.
func (p *PCM4EnvPlayer) StartPlay(sample Sample, channel uint16, loop bool) error {
	if err := p.z80.checkSample(sample, DRV_ALIGN_SFT_PCM); err != nil {
		return err
	}
	if err := checkChannel(channel, pcm4Channels); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_4PCM_ENV, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)

	ch := resolveChannel(channel, bus.Read8(Z80_DRV_STATUS), pcm4Channels)

	writeSampleParams(bus, Z80_DRV_PARAMS+uint32(ch)*4, sample, DRV_ALIGN_SFT_PCM)
	bus.Write8(Z80_DRV_COMMAND, bus.Read8(Z80_DRV_COMMAND)|Z80_DRV_COM_PLAY<<ch)
	setLoopIntent(bus, ch, loop)

	bus.ReleaseBus()
	return nil
}

// StopPlay stops the given channel. No effect if nothing was playing on it.
func (p *PCM4EnvPlayer) StopPlay(channel uint16) error {
	if err := checkExplicitChannel(channel, pcm4Channels); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_4PCM_ENV, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	stopChannel(bus, int(channel), p.z80.nullSample(DRV_ALIGN_SFT_PCM), DRV_ALIGN_SFT_PCM)
	bus.ReleaseBus()
	return nil
}

// SetVolume sets the channel gain, 0 (quiet) to 15 (loud). Values above 15
// are masked to their low 4 bits.
func (p *PCM4EnvPlayer) SetVolume(channel uint16, volume uint8) error {
	if err := checkExplicitChannel(channel, pcm4Channels); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_4PCM_ENV, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	bus.Write8(Z80_DRV_PARAMS_VOLUME+uint32(channel), volume&PCM4_ENV_VOLUME_MASK)
	bus.ReleaseBus()
	return nil
}

// GetVolume returns the channel gain, 0 to 15.
func (p *PCM4EnvPlayer) GetVolume(channel uint16) (uint8, error) {
	if err := checkExplicitChannel(channel, pcm4Channels); err != nil {
		return 0, err
	}
	p.z80.LoadDriver(Z80_DRIVER_4PCM_ENV, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	volume := bus.Read8(Z80_DRV_PARAMS_VOLUME+uint32(channel)) & PCM4_ENV_VOLUME_MASK
	bus.ReleaseBus()
	return volume, nil
}
