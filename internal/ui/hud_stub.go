//go:build !ebiten

package ui

import "minautomata/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Menu returns nil in the headless build.
func (h *HUD) Menu() *Menu { return nil }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(int, bool) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
