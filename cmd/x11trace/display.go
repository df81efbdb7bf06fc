/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	libses "github.com/nabbar/x11trace/session"
)

const x11SockDir = "/tmp/.X11-unix"

// listen opens the proxy's accepting endpoint. The spec is either
// "unix:<path>" or "tcp:<host:port>"; a bare path listens on a unix socket.
func listen(spec string) (net.Listener, error) {
	network, addr := splitSpec(spec)

	if network == "unix" {
		if err := os.MkdirAll(filepath.Dir(addr), 0o700); err != nil {
			return nil, err
		}
		_ = os.Remove(addr)
	}

	return net.Listen(network, addr)
}

// displayDialer resolves an X display spec to an upstream dialer. Local
// displays of the form ":N" or ":N.S" map to the conventional unix socket;
// "host:N" dials TCP port 6000+N.
func displayDialer(display string) (libses.DialUpstream, error) {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	if display == "" {
		return nil, fmt.Errorf("no display given and DISPLAY is not set")
	}

	host, num, ok := strings.Cut(display, ":")
	if !ok {
		return nil, fmt.Errorf("invalid display %q", display)
	}

	// strip a ".screen" suffix
	if i := strings.IndexByte(num, '.'); i >= 0 {
		num = num[:i]
	}
	if num == "" {
		return nil, fmt.Errorf("invalid display %q", display)
	}

	for _, c := range num {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid display %q", display)
		}
	}

	var network, addr string
	if host == "" {
		network = "unix"
		addr = filepath.Join(x11SockDir, "X"+num)
	} else {
		network = "tcp"
		addr = fmt.Sprintf("%s:%d", host, 6000+atoi(num))
	}

	d := &net.Dialer{}
	return func(ctx context.Context) (net.Conn, error) {
		return d.DialContext(ctx, network, addr)
	}, nil
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func splitSpec(spec string) (string, string) {
	if rest, ok := strings.CutPrefix(spec, "unix:"); ok {
		return "unix", rest
	}
	if rest, ok := strings.CutPrefix(spec, "tcp:"); ok {
		return "tcp", rest
	}
	if strings.HasPrefix(spec, "/") {
		return "unix", spec
	}
	return "tcp", spec
}
