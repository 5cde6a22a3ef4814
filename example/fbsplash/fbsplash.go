// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux

// Command fbsplash draws a gradient splash straight into the Linux
// framebuffer. Run it from a console, not under a display server:
//
//	go run gocairo.org/example/fbsplash
package main

import (
	"log"
	"math"
	"unsafe"

	syscall "golang.org/x/sys/unix"

	"gocairo.org/cairo"
)

const (
	fbiogetVScreeninfo = 0x4600
	fbiogetFScreeninfo = 0x4602
)

// Layouts follow fb_var_screeninfo and fb_fix_screeninfo from
// linux/fb.h.
type fbBitfield struct {
	Offset, Length, MSBRight uint32
}

type fbVarScreeninfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp fbBitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	Pixclock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HsyncLen, VsyncLen       uint32
	Sync, VMode              uint32
	Rotate, Colorspace       uint32
	Reserved                 [4]uint32
}

type fbFixScreeninfo struct {
	ID           [16]byte
	SMemStart    uintptr
	SMemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanstep     uint16
	YPanstep     uint16
	YWrapstep    uint16
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func main() {
	fd, err := syscall.Open("/dev/fb0", syscall.O_RDWR, 0)
	if err != nil {
		log.Fatalf("open /dev/fb0: %v", err)
	}
	defer syscall.Close(fd)

	var vinfo fbVarScreeninfo
	if err := ioctl(fd, fbiogetVScreeninfo, unsafe.Pointer(&vinfo)); err != nil {
		log.Fatalf("FBIOGET_VSCREENINFO: %v", err)
	}
	var finfo fbFixScreeninfo
	if err := ioctl(fd, fbiogetFScreeninfo, unsafe.Pointer(&finfo)); err != nil {
		log.Fatalf("FBIOGET_FSCREENINFO: %v", err)
	}
	if vinfo.BitsPerPixel != 32 {
		log.Fatalf("framebuffer is %d bpp, need 32", vinfo.BitsPerPixel)
	}

	width, height, stride := int(vinfo.XRes), int(vinfo.YRes), int(finfo.LineLength)
	fb, err := syscall.Mmap(fd, 0, stride*height, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		log.Fatalf("mmap framebuffer: %v", err)
	}
	defer syscall.Munmap(fb)

	surface := cairo.NewImageSurfaceForData(fb, cairo.FormatRGB24, width, height, stride)
	defer surface.Close()
	splash(surface, float64(width), float64(height))
	surface.Flush()
	log.Printf("splashed %dx%d", width, height)
}

func splash(surface *cairo.ImageSurface, w, h float64) {
	ctx := cairo.NewContext(surface.Surface)
	defer ctx.Close()

	sky := cairo.NewLinearGradient(0, 0, 0, h)
	sky.AddColorStopRGB(0, 0.05, 0.08, 0.20)
	sky.AddColorStopRGB(1, 0.45, 0.20, 0.35)
	ctx.SetSource(&sky.Pattern)
	sky.Close()
	ctx.Paint()

	glow := cairo.NewRadialGradient(w/2, h/2, h/8, w/2, h/2, h/2)
	glow.AddColorStopRGBA(0, 1, 0.85, 0.4, 0.9)
	glow.AddColorStopRGBA(1, 1, 0.85, 0.4, 0)
	ctx.SetSource(&glow.Pattern)
	glow.Close()
	ctx.Arc(w/2, h/2, h/2, 0, 2*math.Pi)
	ctx.Fill()

	ctx.SetSourceRGB(1, 1, 1)
	ctx.SelectFontFace("sans-serif", cairo.FontSlantNormal, cairo.FontWeightBold)
	ctx.SetFontSize(h / 12)
	msg := "gocairo"
	ext := ctx.TextExtents(msg)
	ctx.MoveTo(w/2-ext.Width/2-ext.XBearing, h/2+ext.Height/2)
	ctx.ShowText(msg)
}
