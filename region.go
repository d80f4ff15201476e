package psxcard

// Region identifies the sales region a save came from, derived from the
// two letter prefix of its file name.
type Region int

const (
	RegionUnknown Region = iota
	RegionJapan   // "BI" prefix
	RegionEurope  // "BE" prefix
	RegionAmerica // "BA" prefix
)

// RegionOf classifies a save file name by its prefix.
func RegionOf(name string) Region {
	if len(name) < 2 {
		return RegionUnknown
	}
	switch name[0:2] {
	case "BI":
		return RegionJapan
	case "BE":
		return RegionEurope
	case "BA":
		return RegionAmerica
	}
	return RegionUnknown
}

func (r Region) String() string {
	switch r {
	case RegionJapan:
		return "Japan"
	case RegionEurope:
		return "Europe"
	case RegionAmerica:
		return "America"
	}
	return "Unknown"
}
