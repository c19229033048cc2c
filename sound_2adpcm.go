// sound_2adpcm.go - Dual channel 4-bit ADPCM driver

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

// ADPCM2Player drives the 2 channel ADPCM personality: up to two 4-bit
// ADPCM samples mixed at a fixed 22050 Hz. Samples must sit on a 128 byte
// boundary.
type ADPCM2Player struct {
	z80 *Z80Ctrl
}

const adpcm2Channels = 2

func NewADPCM2Player(z *Z80Ctrl) *ADPCM2Player {
	return &ADPCM2Player{z80: z}
}

// IsPlaying returns the subset of mask whose channels are currently
// playing. Combine SOUND_PCM_CH1_MSK|SOUND_PCM_CH2_MSK to query both at
// once.
func (p *ADPCM2Player) IsPlaying(mask uint8) uint8 {
	p.z80.LoadDriver(Z80_DRIVER_2ADPCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	playing := bus.Read8(Z80_DRV_STATUS) & (mask << Z80_DRV_STAT_PLAYING_SFT)
	bus.ReleaseBus()

	return playing
}

// StartPlay starts a sample on the given channel, or on the first free one
// with SOUND_PCM_CH_AUTO. A sample already playing on the resolved channel
// is superseded.
func (p *ADPCM2Player) StartPlay(sample Sample, channel uint16, loop bool) error {
	if err := p.z80.checkSample(sample, DRV_ALIGN_SFT_ADPCM); err != nil {
		return err
	}
	if err := checkChannel(channel, adpcm2Channels); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_2ADPCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)

	// The status snapshot and everything that depends on it stay under
	// one bus acquisition.
	ch := resolveChannel(channel, bus.Read8(Z80_DRV_STATUS), adpcm2Channels)

	writeSampleParams(bus, Z80_DRV_PARAMS+uint32(ch)*4, sample, DRV_ALIGN_SFT_ADPCM)
	bus.Write8(Z80_DRV_COMMAND, bus.Read8(Z80_DRV_COMMAND)|Z80_DRV_COM_PLAY<<ch)
	setLoopIntent(bus, ch, loop)

	bus.ReleaseBus()
	return nil
}

// StopPlay stops the given channel. No effect if nothing was playing on it.
func (p *ADPCM2Player) StopPlay(channel uint16) error {
	if err := checkExplicitChannel(channel, adpcm2Channels); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_2ADPCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	stopChannel(bus, int(channel), p.z80.nullSample(DRV_ALIGN_SFT_ADPCM), DRV_ALIGN_SFT_ADPCM)
	bus.ReleaseBus()
	return nil
}
