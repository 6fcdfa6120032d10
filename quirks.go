package halfblock

import "os"

// widthMethod is the method GlyphWidth measures with
var widthMethod = widthMethodFromEnv()

func widthMethodFromEnv() graphemeWidthMethod {
	// Some terminals draw ambiguous width characters narrow regardless of
	// the locale
	if os.Getenv("HALFBLOCK_FORCE_UNICODE") != "" {
		return unicodeStd
	}
	return wcwidth
}
