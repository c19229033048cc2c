// fractal_test.go - Fractal Sound tracker wrapper tests

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
	"bytes"
	"testing"
)

// fakeFractalDriver records every entry point invocation.
type fakeFractalDriver struct {
	calls      []string
	decompress func(src, dst []byte)
	queued     []uint16
	fraction   int16
	volMain    int16
	volPSG     int16
	tempo      int16
}

func (f *fakeFractalDriver) Init(decompress func(src, dst []byte)) {
	f.calls = append(f.calls, "init")
	f.decompress = decompress
}
func (f *fakeFractalDriver) Sound() { f.calls = append(f.calls, "sound") }
func (f *fakeFractalDriver) Queue(sound uint16) {
	f.calls = append(f.calls, "queue")
	f.queued = append(f.queued, sound)
}
func (f *fakeFractalDriver) SetMasterFraction(frac int16) {
	f.calls = append(f.calls, "fraction")
	f.fraction = frac
}
func (f *fakeFractalDriver) SetFractionFlag() { f.calls = append(f.calls, "fractionFlag") }
func (f *fakeFractalDriver) SetMasterVolume(main, psg int16) {
	f.calls = append(f.calls, "volume")
	f.volMain, f.volPSG = main, psg
}
func (f *fakeFractalDriver) SetVolumeFlag() { f.calls = append(f.calls, "volumeFlag") }
func (f *fakeFractalDriver) SetMasterTempo(tempo int16) {
	f.calls = append(f.calls, "tempo")
	f.tempo = tempo
}
func (f *fakeFractalDriver) UpdateTempo() { f.calls = append(f.calls, "updateTempo") }

func TestFractal_PassThrough(t *testing.T) {
	drv := &fakeFractalDriver{}
	p := NewFractalPlayer(drv)

	p.Init()
	p.Update()
	p.Queue(42)
	p.SetMasterFraction(-128)
	p.ForceFractionUpdate()
	p.SetMasterVolume(10, 3)
	p.ForceVolumeUpdate()
	p.SetMasterTempo(150)
	p.UpdateTempo()

	want := []string{
		"init", "sound", "queue", "fraction", "fractionFlag",
		"volume", "volumeFlag", "tempo", "updateTempo",
	}
	if len(drv.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", drv.calls, want)
	}
	for i := range want {
		if drv.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, drv.calls[i], want[i])
		}
	}
	if drv.queued[0] != 42 {
		t.Errorf("queued sound: got %d, want 42", drv.queued[0])
	}
	if drv.fraction != -128 || drv.volMain != 10 || drv.volPSG != 3 || drv.tempo != 150 {
		t.Errorf("parameters not forwarded: fraction=%d main=%d psg=%d tempo=%d",
			drv.fraction, drv.volMain, drv.volPSG, drv.tempo)
	}
	if drv.decompress == nil {
		t.Error("Init did not hand over a decompressor")
	}
}

func TestFractal_InitWithCustomDecompressor(t *testing.T) {
	drv := &fakeFractalDriver{}
	p := NewFractalPlayer(drv)

	called := false
	p.InitWith(func(src, dst []byte) { called = true })
	drv.decompress(nil, nil)
	if !called {
		t.Error("custom decompressor not handed to the driver")
	}
}

func TestFractal_Decompress(t *testing.T) {
	src := []byte{0x00, 0x04, 0xDE, 0xAD, 0xBE, 0xEF, 0xFF}
	dst := make([]byte, 8)
	FractalDecompress(src, dst)
	if !bytes.Equal(dst[:4], []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("payload: got %x", dst[:4])
	}
	if dst[4] != 0 {
		t.Error("wrote past the counted payload")
	}
}

func TestFractal_MuteFlags(t *testing.T) {
	var ch FractalChannelMusic

	if ch.IsMuted() {
		t.Fatal("muted before any flag change")
	}
	ch.Mute()
	if !ch.IsMuted() {
		t.Error("not muted after Mute")
	}
	if ch.TrackFlags&FRACTAL_TRACK_FLAG_VOLUME_UPDATE == 0 {
		t.Error("Mute did not raise the volume update dirty bit")
	}

	ch.TrackFlags = 0
	ch.Unmute()
	if ch.IsMuted() {
		t.Error("still muted after Unmute")
	}
	if ch.TrackFlags&FRACTAL_TRACK_FLAG_VOLUME_UPDATE == 0 {
		t.Error("Unmute did not raise the volume update dirty bit")
	}

	ch.ToggleMute()
	if !ch.IsMuted() {
		t.Error("toggle from unmuted did not mute")
	}
	ch.ToggleMute()
	if ch.IsMuted() {
		t.Error("toggle from muted did not unmute")
	}
}
