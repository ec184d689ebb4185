package util

import (
	"hash/fnv"
	"strconv"
	"time"

	"github.com/valyala/fastrand"
)

// GenerateCode returns a short positive code identifying a sitting.
func GenerateCode() int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(time.Now().UnixNano(), 10)))
	_, _ = h.Write([]byte(strconv.FormatUint(uint64(fastrand.Uint32()), 10)))
	return int64(h.Sum32() >> 12)
}

func Noun(number int, one, many string) string {
	if number == 1 || number == -1 {
		return one
	}
	return many
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	if s < 10 {
		return strconv.Itoa(m) + ":0" + strconv.Itoa(s)
	}
	return strconv.Itoa(m) + ":" + strconv.Itoa(s)
}
