package checkicon

const (
	IconFile      = "ic_launcher.png"
	RoundIconFile = "ic_launcher_round.png"
)

// Target is an output directory and the icon size written into it.
type Target struct {
	Folder string
	Size   int
}

// AndroidTargets are the launcher icon densities, from mdpi to xxxhdpi.
var AndroidTargets = []Target{
	{Folder: "mipmap-mdpi", Size: 48},
	{Folder: "mipmap-hdpi", Size: 72},
	{Folder: "mipmap-xhdpi", Size: 96},
	{Folder: "mipmap-xxhdpi", Size: 144},
	{Folder: "mipmap-xxxhdpi", Size: 192},
}
