// main.go - mdplay: audition samples through the simulated Z80 sound coprocessor

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

package main

import (
	"flag"
	"fmt"
	"os"

	mdsound "github.com/intuitionamiga/MegaDriveSound"
	"golang.org/x/term"
)

// The simulator never executes firmware, so a placeholder image is enough
// to drive the load state machine. On real hardware this would be the
// actual Z80 driver binary.
var stubDriver = []byte{0x00}

func main() {
	romPath := flag.String("rom", "", "raw 8-bit signed PCM sample data")
	loop := flag.Bool("loop", false, "loop samples")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: mdplay -rom <file> [-loop]")
		os.Exit(1)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdplay: %v\n", err)
		os.Exit(1)
	}
	// Pad to the PCM boundary so slice descriptors stay aligned.
	if rem := len(rom) % 256; rem != 0 {
		rom = append(rom, make([]byte, 256-rem)...)
	}

	sim := mdsound.NewSimulatedZ80()
	sim.AttachROM(rom)

	ctrl := mdsound.NewZ80Ctrl(sim)
	if _, err := ctrl.RegisterDriver(mdsound.Z80_DRIVER_4PCM, stubDriver); err != nil {
		fmt.Fprintf(os.Stderr, "mdplay: %v\n", err)
		os.Exit(1)
	}
	ctrl.Init(mdsound.Z80_DRIVER_4PCM)
	sim.SetPersonality(mdsound.Z80_DRIVER_4PCM)

	pcm4 := mdsound.NewPCM4Player(ctrl)

	out, err := mdsound.NewOtoPlayer(mdsound.SIM_SAMPLE_RATE)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdplay: audio output: %v\n", err)
		os.Exit(1)
	}
	out.SetupPlayer(sim)
	out.Start()
	defer out.Close()

	// Four equal 256-aligned slices of the ROM, one per key.
	sliceLen := uint32(len(rom)/4) &^ 0xFF
	if sliceLen == 0 {
		sliceLen = 256
	}
	slices := [4]mdsound.Sample{}
	for i := range slices {
		slices[i] = mdsound.Sample{Addr: uint32(i) * sliceLen, Len: sliceLen}
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdplay: terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	fmt.Print("mdplay: 1-4 trigger slices, s stop all, q quit\r\n")

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			break
		}
		switch buf[0] {
		case '1', '2', '3', '4':
			i := int(buf[0] - '1')
			if err := pcm4.StartPlay(slices[i], mdsound.SOUND_PCM_CH_AUTO, *loop); err != nil {
				fmt.Printf("start: %v\r\n", err)
			}
		case 's':
			for ch := uint16(0); ch < 4; ch++ {
				pcm4.StopPlay(ch)
			}
		case 'q', 3: // q or ctrl-c
			return
		}
	}
}
