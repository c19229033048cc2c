// z80_constants.go - Z80 sound coprocessor memory map and driver protocol constants

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

/*
z80_constants.go - Master register map for the Z80 sound coprocessor window

The 68000 sees the Z80 side of the machine as a memory window plus two
control ports. Individual sound drivers define their own parameter layout
inside the window; the generic PCM-family driver protocol lives at a fixed
offset shared by all of them.

MEMORY MAP OVERVIEW
===================

Address Range       Size    Region
---------------------------------------------------------------------
0xA00000-0xA01FFF   8KB     Z80 RAM (driver code + mailbox registers)
0xA00100            1B      Driver command byte (bit n = play channel n)
0xA00102            1B      Driver status byte 0 (live playing bitmask)
0xA00103            1B      Driver status byte 1 (host loop-intent bitmask)
0xA00104-0xA00113   16B     Driver parameter blocks (4 bytes per channel)
0xA00114-0xA00123   16B     Driver internal parameter bank (rewritten on stop)
0xA00124-0xA00127   4B      Per-channel volume table (4PCM_ENV only)
0xA0151A-0xA0151D   4B      MVS track player mailbox (own ABI)
0xA01FFC-0xA01FFF   4B      TFM track player mailbox (own ABI)
0xA11100            -       BUSREQ control port
0xA11200            -       RESET control port

The two status bytes share bit positions but not meaning: byte 0 is owned by
the Z80 and reports what is audibly playing, byte 1 is a 68000-side loop
intent flag the driver consults when a sample runs out.
*/

package mdsound

// Z80 memory window as seen from the 68000 side.
const (
	Z80_RAM_START = 0xA00000
	Z80_RAM_SIZE  = 0x2000
	Z80_RAM_END   = Z80_RAM_START + Z80_RAM_SIZE - 1

	Z80_BUSREQ_PORT = 0xA11100 // bus request / bus acknowledge
	Z80_RESET_PORT  = 0xA11200 // active-low reset line
)

// Generic PCM-family driver protocol. All PCM drivers share this mailbox
// layout; only channel count and alignment shift differ between them.
const (
	Z80_DRV_COMMAND = Z80_RAM_START + 0x0100
	Z80_DRV_STATUS  = Z80_RAM_START + 0x0102 // 2 bytes, see map overview
	Z80_DRV_PARAMS  = Z80_RAM_START + 0x0104 // 4 bytes per channel

	Z80_DRV_PARAMS_INTERNAL = Z80_DRV_PARAMS + 0x10 // driver-owned copy, rewritten on stop
	Z80_DRV_PARAMS_VOLUME   = Z80_DRV_PARAMS + 0x20 // 4PCM_ENV volume table, 1 byte per channel
)

// Command and status bits. Shift by channel index for multi-channel drivers.
const (
	Z80_DRV_COM_PLAY_SFT = 0
	Z80_DRV_COM_PLAY     = 1 << Z80_DRV_COM_PLAY_SFT

	Z80_DRV_STAT_PLAYING_SFT = 0
	Z80_DRV_STAT_PLAYING     = 1 << Z80_DRV_STAT_PLAYING_SFT
	Z80_DRV_STAT_READY_SFT   = 7
	Z80_DRV_STAT_READY       = 1 << Z80_DRV_STAT_READY_SFT
)

// Driver personalities. Exactly one is resident in Z80 RAM at any time;
// loading a new one overwrites the previous firmware and its register
// semantics.
const (
	Z80_DRIVER_NULL = iota
	Z80_DRIVER_PCM
	Z80_DRIVER_2ADPCM
	Z80_DRIVER_4PCM
	Z80_DRIVER_4PCM_ENV
	Z80_DRIVER_MVS
	Z80_DRIVER_TFM

	Z80_DRIVER_NUM
)

// Sample alignment. The drivers drop the low bits of address and length
// before handing them to the Z80, so samples must sit on these boundaries.
const (
	DRV_ALIGN_SFT_PCM   = 8 // 8-bit PCM families: 256 byte boundary
	DRV_ALIGN_SFT_ADPCM = 7 // 4-bit ADPCM: 128 byte boundary
)

// Channel selectors and masks for the multi-channel PCM drivers.
const (
	SOUND_PCM_CH_AUTO = 0xFFFF // pick the first free channel

	SOUND_PCM_CH1 = 0
	SOUND_PCM_CH2 = 1
	SOUND_PCM_CH3 = 2
	SOUND_PCM_CH4 = 3

	SOUND_PCM_CH1_MSK = 1 << SOUND_PCM_CH1
	SOUND_PCM_CH2_MSK = 1 << SOUND_PCM_CH2
	SOUND_PCM_CH3_MSK = 1 << SOUND_PCM_CH3
	SOUND_PCM_CH4_MSK = 1 << SOUND_PCM_CH4
)

// Playback rate codes for the single channel PCM driver.
const (
	SOUND_RATE_32000 = 0
	SOUND_RATE_22050 = 1
	SOUND_RATE_16000 = 2
	SOUND_RATE_13400 = 3
	SOUND_RATE_11025 = 4
	SOUND_RATE_8000  = 5
)

// Panning codes for the single channel PCM driver.
const (
	SOUND_PAN_LEFT   = 0x80
	SOUND_PAN_RIGHT  = 0x40
	SOUND_PAN_CENTER = 0xC0
)

// MVS track player mailbox. Independent firmware with its own ABI, not an
// instance of the generic protocol. The status byte doubles as the command
// byte: writing a code below is the command, reading it back is the status.
const (
	MVS_DRV_PARAMS = 0xA0151A // track address lo/mid/hi, command at +3
	MVS_DRV_STATUS = 0xA0151D

	SOUND_MVS_SILENCE = 0
	SOUND_MVS_LOOP    = 1
	SOUND_MVS_ONCE    = 2
)

// TFM track player mailbox. The track address is staged here before the
// driver is loaded; the freshly booted firmware reads it at startup.
const (
	TFM_DRV_PARAMS = 0xA01FFC
)
