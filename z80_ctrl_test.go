// z80_ctrl_test.go - Driver registry and load state machine tests

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

import (
	"errors"
	"testing"
)

func TestZ80Ctrl_RegisterDriverValidation(t *testing.T) {
	z := NewZ80Ctrl(&traceBus{})

	if _, err := z.RegisterDriver(Z80_DRIVER_NULL, stubImage(0)); err == nil {
		t.Error("registering the null driver succeeded")
	}
	if _, err := z.RegisterDriver(Z80_DRIVER_NUM, stubImage(0)); err == nil {
		t.Error("registering an out of range id succeeded")
	}
	if _, err := z.RegisterDriver(Z80_DRIVER_PCM, make([]byte, Z80_RAM_SIZE+1)); err == nil {
		t.Error("registering an oversized image succeeded")
	}

	crc, err := z.RegisterDriver(Z80_DRIVER_PCM, stubImage(Z80_DRIVER_PCM))
	if err != nil {
		t.Fatalf("RegisterDriver: %v", err)
	}
	got, ok := z.DriverCRC(Z80_DRIVER_PCM)
	if !ok || got != crc {
		t.Errorf("DriverCRC: got (%#x, %t), want (%#x, true)", got, ok, crc)
	}

	// Different images must checksum differently for these stubs.
	crc2, _ := z.RegisterDriver(Z80_DRIVER_2ADPCM, stubImage(Z80_DRIVER_2ADPCM))
	if crc2 == crc {
		t.Error("distinct stub images produced identical CRCs")
	}
}

func TestZ80Ctrl_LoadUnregisteredDriverIgnored(t *testing.T) {
	bus := &traceBus{}
	z := NewZ80Ctrl(bus)

	// Empty catalog: a load must not reboot the Z80 into nothing.
	z.LoadDriver(Z80_DRIVER_4PCM, false)
	if len(bus.ops) != 0 {
		t.Errorf("bus touched loading an unregistered driver: %d ops", len(bus.ops))
	}
	if got := z.LoadedDriver(); got != Z80_DRIVER_NULL {
		t.Errorf("loaded after ignored load: got %d, want %d", got, Z80_DRIVER_NULL)
	}
}

func TestZ80Ctrl_LoadDriverIdempotent(t *testing.T) {
	z, bus := newTraceRig(t)

	z.LoadDriver(Z80_DRIVER_4PCM, false)
	if got := z.LoadedDriver(); got != Z80_DRIVER_4PCM {
		t.Fatalf("loaded driver: got %d, want %d", got, Z80_DRIVER_4PCM)
	}
	uploads := bus.countWrites(Z80_RAM_START)

	// Ensure-loaded on the resident personality performs no further
	// upload and no reset.
	resets := bus.firstOp("reset+", 0)
	z.LoadDriver(Z80_DRIVER_4PCM, false)
	if got := bus.countWrites(Z80_RAM_START); got != uploads {
		t.Errorf("second LoadDriver uploaded again: %d writes at base, want %d", got, uploads)
	}
	if resets < 0 {
		t.Error("first load pulsed no reset")
	}
}

func TestZ80Ctrl_LoadDriverForceReloads(t *testing.T) {
	z, bus := newTraceRig(t)

	z.LoadDriver(Z80_DRIVER_TFM, false)
	uploads := bus.countWrites(Z80_RAM_START)
	z.LoadDriver(Z80_DRIVER_TFM, true)
	if got := bus.countWrites(Z80_RAM_START); got != uploads*2 {
		t.Errorf("forced reload did not re-upload: %d writes at base, want %d", got, uploads*2)
	}
}

func TestZ80Ctrl_SwitchIsDestructive(t *testing.T) {
	z, bus := newTraceRig(t)

	z.LoadDriver(Z80_DRIVER_4PCM, false)
	z.LoadDriver(Z80_DRIVER_2ADPCM, false)
	if got := z.LoadedDriver(); got != Z80_DRIVER_2ADPCM {
		t.Fatalf("loaded driver after switch: got %d, want %d", got, Z80_DRIVER_2ADPCM)
	}

	// The new image overwrote the old one in place.
	if got := bus.ram[0]; got != byte(Z80_DRIVER_2ADPCM) {
		t.Errorf("firmware byte 0 after switch: got %#x, want %#x", got, Z80_DRIVER_2ADPCM)
	}
}

func TestZ80Ctrl_UploadWithinOneBusAcquisition(t *testing.T) {
	z, bus := newTraceRig(t)
	z.LoadDriver(Z80_DRIVER_PCM, false)

	// No release between the first firmware byte and the reset assert: a
	// partially uploaded driver must never run.
	first := bus.firstOp("write", Z80_RAM_START)
	reset := bus.firstOp("reset+", 0)
	if first < 0 || reset < 0 || reset < first {
		t.Fatalf("bad load sequence: first upload %d, reset %d", first, reset)
	}
	for _, op := range bus.ops[first:reset] {
		if op.kind == "release" {
			t.Fatal("bus released mid-upload")
		}
	}
}

func TestZ80Ctrl_InitAndReset(t *testing.T) {
	z, bus := newTraceRig(t)

	z.Init(Z80_DRIVER_4PCM_ENV)
	if got := z.LoadedDriver(); got != Z80_DRIVER_4PCM_ENV {
		t.Fatalf("loaded after Init: got %d, want %d", got, Z80_DRIVER_4PCM_ENV)
	}

	z.Reset()
	if got := z.LoadedDriver(); got != Z80_DRIVER_NULL {
		t.Fatalf("loaded after Reset: got %d, want %d", got, Z80_DRIVER_NULL)
	}
	for i, b := range bus.ram {
		if b != 0 {
			t.Fatalf("Z80 RAM not cleared at %#x: %#x", i, b)
		}
	}
}

func TestZ80Ctrl_LoadDriverWait(t *testing.T) {
	sim := NewSimulatedZ80()
	z := NewZ80Ctrl(sim)
	registerAllDrivers(t, z)

	if err := z.LoadDriverWait(Z80_DRIVER_4PCM); err != nil {
		t.Errorf("LoadDriverWait with ready firmware: %v", err)
	}
}

func TestZ80Ctrl_LoadDriverWaitTimeout(t *testing.T) {
	sim := NewSimulatedZ80()
	sim.SetReadyOnBoot(false)
	z := NewZ80Ctrl(sim)
	registerAllDrivers(t, z)

	err := z.LoadDriverWait(Z80_DRIVER_4PCM)
	if !errors.Is(err, ErrDriverLoadTimeout) {
		t.Errorf("LoadDriverWait with wedged firmware: got %v, want ErrDriverLoadTimeout", err)
	}
	// The optimistic contract stands: the personality is considered
	// resident even though the handshake failed.
	if got := z.LoadedDriver(); got != Z80_DRIVER_4PCM {
		t.Errorf("loaded after timeout: got %d, want %d", got, Z80_DRIVER_4PCM)
	}
}

func TestZ80Ctrl_StrictAlignToggle(t *testing.T) {
	z, bus := newTraceRig(t)
	pcm := NewPCMPlayer(z)

	misaligned := Sample{Addr: 0x012345, Len: 0x0100}
	if err := pcm.StartPlay(misaligned, SOUND_RATE_16000, SOUND_PAN_CENTER, false); !errors.Is(err, ErrInvalidAlignment) {
		t.Errorf("strict start with misaligned sample: got %v, want ErrInvalidAlignment", err)
	}
	// Validation failures must not touch the bus.
	if len(bus.ops) != 0 {
		t.Errorf("bus touched on validation failure: %d ops", len(bus.ops))
	}

	z.SetStrictAlign(false)
	if err := pcm.StartPlay(misaligned, SOUND_RATE_16000, SOUND_PAN_CENTER, false); err != nil {
		t.Errorf("non-strict start: %v", err)
	}
	// The low bits are gone on the wire: 0x012345 >> 8 = 0x23.
	if got := bus.ram[Z80_DRV_PARAMS-Z80_RAM_START]; got != 0x23 {
		t.Errorf("addr_lo on wire: got %#x, want 0x23", got)
	}
}
