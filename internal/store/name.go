package store

import (
	"fmt"
	"time"
)

// ImageName derives the object key for an image generated at t, e.g.
// image_2024-03-23_14-05-09_123456.png. Names only differ at microsecond
// resolution, so two invocations within the same microsecond collide.
func ImageName(t time.Time) string {
	return fmt.Sprintf("image_%s_%06d.png", t.Format("2006-01-02_15-04-05"), t.Nanosecond()/int(time.Microsecond))
}
