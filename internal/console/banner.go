package console

import (
	"fmt"
	"runtime"
	"strings"
)

// sympySetup mirrors the symbolic math bootstrap the kernel runs when
// symbolic_math is enabled.
const sympySetup = `
These commands were executed:
>>> from sympy import *
>>> x, y, z, t = symbols('x y z t')
>>> k, m, n = symbols('k m n', integer=True)
>>> f, g, h = symbols('f g h', cls=Function)
`

// Banner returns the console startup text. Selection is a pure function
// of the console configuration: the long banner includes environment
// notes, the short one is a single version line.
func (s *Shell) Banner() string {
	if s.cfg.ShowBanner {
		return s.longBanner()
	}
	return s.shortBanner()
}

// AddBannerLines appends extra lines to the long banner, used by startup
// scripts.
func (s *Shell) AddBannerLines(lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extraBanner = append(s.extraBanner, lines...)
}

func (s *Shell) longBanner() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skiff console %s (%s on %s)\n", s.version, runtime.Version(), runtime.GOOS)
	b.WriteString("Type code to execute it in the attached kernel.\n")

	if s.cfg.Pylab && s.cfg.PylabAutoload {
		b.WriteString("\nPopulating the interactive namespace from numpy and matplotlib\n")
	}
	if s.cfg.SymbolicMath {
		b.WriteString(sympySetup)
	}

	s.mu.RLock()
	extras := append([]string(nil), s.extraBanner...)
	s.mu.RUnlock()
	for _, line := range extras {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Shell) shortBanner() string {
	return fmt.Sprintf("%s on %s -- Skiff console %s", runtime.Version(), runtime.GOOS, s.version)
}
