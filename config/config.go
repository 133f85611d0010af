package config

// Tunables for the demo window and world. Plain vars so a fork can tweak
// them without threading a settings struct through every call site.
var (
	WindowWidth  = 1600
	WindowHeight = 900
	Vsync        = true

	// Seed for the building height/tint stream. The city layout itself is
	// fixed by the recipe string; the seed only varies the skyline.
	Seed int64 = 1

	AssetDir = "resources"
	FontPath = "resources/font.ttf"
)

// Clip planes. The fog density handed to the driver is scaled by FarPlane.
const (
	NearPlane float32 = 0.03
	FarPlane  float32 = 50
)

var FogColor = [4]float32{0.5, 0.51, 0.54, 1}
