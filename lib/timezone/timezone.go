package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic(err)
	}
}

// force timezone to be KST because the hosting region is not,
// and the polling windows are defined in campus-local wall time
// derived from <time.Time>.Weekday()/Hour()
func Now() time.Time {
	return time.Now().In(Location)
}
