// sound_tfm.go - TFM track player driver

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

// TFMPlayer drives the TFM music tracker firmware. This personality inverts
// the usual ordering: the song address is staged in the shared window
// BEFORE the driver is loaded, then the Z80 goes through a full reset cycle
// so the freshly booted firmware picks the address up at startup. Do not
// "fix" this to match the other drivers; the firmware only reads the
// mailbox at boot.
//
// There is no status query, no stop and no loop control at this layer.
type TFMPlayer struct {
	z80 *Z80Ctrl
}

func NewTFMPlayer(z *Z80Ctrl) *TFMPlayer {
	return &TFMPlayer{z80: z}
}

// StartPlay stages the 24-bit track address and boots the TFM firmware.
// The load is forced so the reset cycle happens even when the driver is
// already resident.
func (p *TFMPlayer) StartPlay(songAddr uint32) {
	bus := p.z80.Bus()
	bus.RequestBus(true)

	bus.Write8(TFM_DRV_PARAMS+0, uint8(songAddr))
	bus.Write8(TFM_DRV_PARAMS+1, uint8(songAddr>>8))
	bus.Write8(TFM_DRV_PARAMS+2, uint8(songAddr>>16))

	bus.ReleaseBus()

	p.z80.LoadDriver(Z80_DRIVER_TFM, true)
}
