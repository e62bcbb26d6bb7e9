// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package illustrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"os"
	"runtime"
	"time"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/kbinani/screenshot"
	"github.com/sirupsen/logrus"
)

// captureSettleDelay gives Illustrator time to raise its window before the
// frame grab.
const captureSettleDelay = 1 * time.Second

// jpegQuality keeps screenshots small enough for an MCP image payload.
const jpegQuality = 50

type comScripter struct{}

func newScripter() Scripter {
	return &comScripter{}
}

// withCOM runs fn with COM initialized on a locked OS thread. COM apartments
// are per-thread, so the goroutine must not migrate while talking to them.
func withCOM(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		// S_FALSE means the thread was already initialized
		if !(errors.As(err, &oleErr) && oleErr.Code() == uintptr(1)) {
			return fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()
	return fn()
}

func dispatch(progID string) (*ole.IDispatch, error) {
	unknown, err := oleutil.CreateObject(progID)
	if err != nil {
		return nil, fmt.Errorf("failed to create COM object %q: %w", progID, err)
	}
	defer unknown.Release()
	disp, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("failed to query IDispatch of %q: %w", progID, err)
	}
	return disp, nil
}

// RunScript writes the code to a temporary .jsx file and asks Illustrator to
// execute it via DoJavaScriptFile. The file is removed after execution.
func (s *comScripter) RunScript(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	jsx, err := os.CreateTemp("", "illustrator-*.jsx")
	if err != nil {
		return fmt.Errorf("failed to create a temporary script file: %w", err)
	}
	jsxPath := jsx.Name()
	defer os.Remove(jsxPath)
	if _, err := jsx.WriteString(code); err != nil {
		jsx.Close()
		return fmt.Errorf("failed to write the script to %q: %w", jsxPath, err)
	}
	if err := jsx.Close(); err != nil {
		return err
	}
	logrus.Debugf("executing ExtendScript from %q", jsxPath)
	return withCOM(func() error {
		app, err := dispatch("Illustrator.Application")
		if err != nil {
			return err
		}
		defer app.Release()
		if _, err := oleutil.CallMethod(app, "DoJavaScriptFile", jsxPath); err != nil {
			return fmt.Errorf("DoJavaScriptFile failed: %w", err)
		}
		return nil
	})
}

// CaptureWindow activates the Illustrator window, waits for it to settle,
// and grabs the primary display as a JPEG.
func (s *comScripter) CaptureWindow(ctx context.Context) ([]byte, error) {
	err := withCOM(func() error {
		shell, err := dispatch("WScript.Shell")
		if err != nil {
			return err
		}
		defer shell.Release()
		if _, err := oleutil.CallMethod(shell, "AppActivate", "Adobe Illustrator"); err != nil {
			return fmt.Errorf("failed to activate the Illustrator window: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	select {
	case <-time.After(captureSettleDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if screenshot.NumActiveDisplays() == 0 {
		return nil, errors.New("no active display to capture")
	}
	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(0))
	if err != nil {
		return nil, fmt.Errorf("failed to capture the screen: %w", err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode the screenshot: %w", err)
	}
	logrus.Debugf("captured a %d-byte screenshot", buf.Len())
	return buf.Bytes(), nil
}
