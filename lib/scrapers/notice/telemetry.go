package notice

import (
	"ajou-backend/lib/restyutil"
	"ajou-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("ajou.lib.scrapers.notice")
var restyInstrumentOutput restyutil.InstrumentOutput

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
