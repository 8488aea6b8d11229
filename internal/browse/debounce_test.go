package browse

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestDebouncer_RapidCalls(t *testing.T) {
	defer goleak.VerifyNone(t)

	var called, last int32
	d := NewDebouncer(50 * time.Millisecond)

	for i := int32(1); i <= 10; i++ {
		value := i
		d.Debounce(func() {
			atomic.StoreInt32(&last, value)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&called) == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	assert.Equal(t, int32(10), atomic.LoadInt32(&last))
}

func TestDebouncer_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	var called int32
	d := NewDebouncer(50 * time.Millisecond)
	d.Debounce(func() { atomic.AddInt32(&called, 1) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&called))
}

func TestDebouncer_Immediate(t *testing.T) {
	var called int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&called, 1) })
	d.Immediate(func() { atomic.AddInt32(&called, 10) })

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(10), atomic.LoadInt32(&called))
}
