// z80_ctrl.go - Z80 driver load state machine and firmware catalog

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
z80_ctrl.go - Driver registry for the Z80 sound coprocessor

Exactly one driver firmware is resident in Z80 RAM at any time. Every
playback operation funnels through LoadDriver before touching the mailbox
registers: if the wanted personality is already resident this is a no-op,
otherwise the previous firmware is destructively overwritten and the Z80 is
rebooted into the new one. Switching personalities silently discards all
channel state of the previous driver; there is no unload, no handshake and
no acknowledgment that a transfer succeeded. LoadDriverWait adds an optional
bounded ready-poll on top for callers that want to detect a wedged load, at
the cost of observable timing.

Firmware images are opaque binaries registered up front. The registry
records a CRC8 of each image at registration time so an integrator can
verify that the blob it shipped is the blob that will be uploaded.
*/

package mdsound

import (
	"fmt"
	"sync"
	"time"

	"github.com/sigurn/crc8"
)

// Driver load ready-poll tuning for LoadDriverWait.
const (
	DRV_READY_TIMEOUT = 100 * time.Millisecond
	DRV_READY_POLL    = time.Millisecond
)

var crcTable = crc8.MakeTable(crc8.CRC8)

type driverImage struct {
	data []byte
	crc  uint8
}

// Z80Ctrl owns the loaded-driver state machine and the firmware catalog.
// All driver transitions go through loadDriverLocked, so the destructive
// switch has a single auditable choke point.
type Z80Ctrl struct {
	bus Z80Bus

	mu      sync.Mutex
	loaded  int // Z80_DRIVER_*, Z80_DRIVER_NULL before any load
	drivers map[int]driverImage

	nullPCM     Sample // silent sample played to stop a PCM-family channel
	nullADPCM   Sample
	strictAlign bool
}

func NewZ80Ctrl(bus Z80Bus) *Z80Ctrl {
	return &Z80Ctrl{
		bus:     bus,
		loaded:  Z80_DRIVER_NULL,
		drivers: make(map[int]driverImage),
		// Defaults assume the build places the silent samples at the
		// bottom of ROM; override with SetNullSamples to match the
		// actual resource layout.
		nullPCM:     Sample{Addr: 0x0200, Len: 0x0100},
		nullADPCM:   Sample{Addr: 0x0300, Len: 0x0080},
		strictAlign: true,
	}
}

// Bus returns the underlying Z80 bus. Callers are expected to bracket any
// access with RequestBus/ReleaseBus.
func (z *Z80Ctrl) Bus() Z80Bus {
	return z.bus
}

// RegisterDriver adds a firmware image to the catalog and returns its CRC8.
// The image itself is treated as an opaque binary.
func (z *Z80Ctrl) RegisterDriver(driver int, image []byte) (uint8, error) {
	if driver <= Z80_DRIVER_NULL || driver >= Z80_DRIVER_NUM {
		return 0, fmt.Errorf("mdsound: unknown driver id %d", driver)
	}
	if len(image) > Z80_RAM_SIZE {
		return 0, fmt.Errorf("mdsound: driver image %d bytes exceeds Z80 RAM (%d)", len(image), Z80_RAM_SIZE)
	}
	crc := crc8.Checksum(image, crcTable)
	z.mu.Lock()
	z.drivers[driver] = driverImage{data: image, crc: crc}
	z.mu.Unlock()
	return crc, nil
}

// DriverCRC returns the recorded checksum of a registered firmware image.
func (z *Z80Ctrl) DriverCRC(driver int) (uint8, bool) {
	z.mu.Lock()
	defer z.mu.Unlock()
	img, ok := z.drivers[driver]
	return img.crc, ok
}

// LoadedDriver reports the resident personality.
func (z *Z80Ctrl) LoadedDriver() int {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.loaded
}

// SetNullSamples overrides the silent-sample descriptors used by the stop
// operations. Addresses and lengths must respect the usual boundaries.
func (z *Z80Ctrl) SetNullSamples(pcm, adpcm Sample) {
	z.mu.Lock()
	z.nullPCM = pcm
	z.nullADPCM = adpcm
	z.mu.Unlock()
}

// SetStrictAlign controls boundary validation of sample descriptors. With
// strict alignment off, misaligned samples are accepted and their low bits
// are silently truncated on the wire, matching the original hardware
// behaviour.
func (z *Z80Ctrl) SetStrictAlign(strict bool) {
	z.mu.Lock()
	z.strictAlign = strict
	z.mu.Unlock()
}

// Init clears Z80 RAM and boots the given driver. Call once at startup.
func (z *Z80Ctrl) Init(driver int) {
	z.bus.RequestBus(true)
	for i := uint32(0); i < Z80_RAM_SIZE; i++ {
		z.bus.Write8(Z80_RAM_START+i, 0)
	}
	z.bus.ReleaseBus()

	z.mu.Lock()
	z.loaded = Z80_DRIVER_NULL
	z.mu.Unlock()

	if driver != Z80_DRIVER_NULL {
		z.LoadDriver(driver, true)
	}
}

// Reset returns the coprocessor to the unloaded state: RAM cleared, reset
// pulsed, no personality resident.
func (z *Z80Ctrl) Reset() {
	z.bus.RequestBus(true)
	for i := uint32(0); i < Z80_RAM_SIZE; i++ {
		z.bus.Write8(Z80_RAM_START+i, 0)
	}
	z.bus.StartReset()
	z.bus.ReleaseBus()
	z.bus.EndReset()

	z.mu.Lock()
	z.loaded = Z80_DRIVER_NULL
	z.mu.Unlock()
}

// LoadDriver makes the given personality resident. If it already is and
// force is false, nothing happens. The load is fire and forget: the
// protocol has no acknowledgment channel, so a failed transfer is
// undetectable here. Use LoadDriverWait when a ready handshake is wanted.
// A driver id with no registered image is ignored outright; that is host
// side catalog misuse, not a hardware condition the optimistic contract
// covers.
func (z *Z80Ctrl) LoadDriver(driver int, force bool) {
	z.mu.Lock()
	defer z.mu.Unlock()
	if z.loaded == driver && !force {
		return
	}
	z.loadDriverLocked(driver)
}

// loadDriverLocked uploads the firmware and reboots the Z80. The upload and
// the reset assertion happen under one bus acquisition; the reset is
// completed after the bus is handed back so the Z80 boots straight into the
// new image. Switching away from a personality mid-playback discards its
// channel state with no warning.
func (z *Z80Ctrl) loadDriverLocked(driver int) {
	img, ok := z.drivers[driver]
	if !ok {
		// Never reboot the Z80 into an empty image.
		return
	}

	z.bus.RequestBus(true)
	for i, b := range img.data {
		z.bus.Write8(Z80_RAM_START+uint32(i), b)
	}
	z.bus.StartReset()
	z.bus.ReleaseBus()
	z.bus.EndReset()

	z.loaded = driver
}

// LoadDriverWait is LoadDriver plus a bounded poll of the driver ready bit.
// Only the PCM-family drivers implement the ready convention. Returns
// ErrDriverLoadTimeout if the driver never reports ready; the personality
// is still considered resident afterwards, matching the optimistic
// contract of the rest of this layer.
func (z *Z80Ctrl) LoadDriverWait(driver int) error {
	z.LoadDriver(driver, false)

	deadline := time.Now().Add(DRV_READY_TIMEOUT)
	for {
		z.bus.RequestBus(true)
		ready := z.bus.Read8(Z80_DRV_STATUS)&Z80_DRV_STAT_READY != 0
		z.bus.ReleaseBus()
		if ready {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrDriverLoadTimeout
		}
		time.Sleep(DRV_READY_POLL)
	}
}

// checkSample validates a descriptor against the driver's alignment
// boundary. With strict alignment disabled it always passes; the low bits
// are then truncated on the wire, corrupting playback audibly rather than
// failing.
func (z *Z80Ctrl) checkSample(s Sample, shift uint) error {
	z.mu.Lock()
	strict := z.strictAlign
	z.mu.Unlock()
	if !strict {
		return nil
	}
	if !s.alignedTo(shift) {
		return fmt.Errorf("%w: sample %#x+%#x not on %d byte boundary",
			ErrInvalidAlignment, s.Addr, s.Len, 1<<shift)
	}
	return nil
}

func (z *Z80Ctrl) nullSample(shift uint) Sample {
	z.mu.Lock()
	defer z.mu.Unlock()
	if shift == DRV_ALIGN_SFT_ADPCM {
		return z.nullADPCM
	}
	return z.nullPCM
}
