package env

import "os"

type Mode int

const (
	ModeProd Mode = iota
	ModeDev
)

func (m Mode) String() string {
	if m == ModeDev {
		return "dev"
	}
	return "prod"
}

func DetectMode() Mode {
	if os.Getenv("ACCORDION_DEV") == "1" {
		return ModeDev
	}
	return ModeProd
}

func IsDev() bool {
	return DetectMode() == ModeDev
}
