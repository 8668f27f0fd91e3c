package main

func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
	if m.panX < 0 {
		m.panX = 0
	}
	if m.panY < 0 {
		m.panY = 0
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
