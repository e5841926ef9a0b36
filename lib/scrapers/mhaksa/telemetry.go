package mhaksa

import (
	"ajou-backend/lib/restyutil"
	"ajou-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("ajou.lib.scrapers.mhaksa")
var restyInstrumentOutput restyutil.InstrumentOutput

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
