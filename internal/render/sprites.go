package render

// StarImage is an 8x8 ring in the star's color with a dark core.
func StarImage(c uint8) *Image {
	img := NewImage(8, 8)
	img.DrawCircle(4, 4, 3, c)
	img.SetPixel(4, 4, ColorBlack)
	return img
}

// CursorImage is a 10x10 hollow selection box.
func CursorImage() *Image {
	img := NewImage(10, 10)
	for i := 0; i < 10; i++ {
		img.SetPixel(i, 0, ColorLightBlue)
		img.SetPixel(i, 9, ColorLightBlue)
		img.SetPixel(0, i, ColorLightBlue)
		img.SetPixel(9, i, ColorLightBlue)
	}
	return img
}

// ShipImage is the player's 12x12 fighter.
func ShipImage() *Image {
	img := NewImage(12, 12)
	img.FillRect(5, 0, 2, 12, ColorDarkPurple)
	img.FillRect(0, 4, 12, 4, ColorTan)
	img.FillRect(4, 4, 4, 8, ColorWhite)
	return img
}

// EnemyTierColor maps difficulty to the enemy hull color.
func EnemyTierColor(difficulty int) uint8 {
	switch {
	case difficulty >= 3:
		return ColorRed
	case difficulty >= 2:
		return ColorGreen
	default:
		return ColorPurple
	}
}

// EnemyImage is a 10x10 block with a 6x6 core.
func EnemyImage(c uint8) *Image {
	img := NewImage(10, 10)
	img.FillRect(2, 2, 6, 6, c)
	return img
}

// LaserImage is the 2x4 player projectile.
func LaserImage() *Image {
	img := NewImage(2, 4)
	img.Fill(ColorLightBlue)
	return img
}

// LootImage is a 4x4 salvage chip.
func LootImage() *Image {
	img := NewImage(4, 4)
	img.Fill(ColorRed)
	return img
}

// ExplorerImage is the 12x12 surface rover.
func ExplorerImage() *Image {
	img := NewImage(12, 12)
	img.FillRect(2, 2, 8, 8, ColorLightPurple)
	return img
}

// ResourceImage is a 6x6 ore node.
func ResourceImage() *Image {
	img := NewImage(6, 6)
	img.Fill(ColorTan)
	return img
}

// HostileImage is a 10x10 surface roamer.
func HostileImage() *Image {
	img := NewImage(10, 10)
	img.FillRect(1, 1, 8, 8, ColorRed)
	return img
}
