package touchscreen_test

import (
	"testing"

	"github.com/Shehroz30/stm32f3-ili9341/touchscreen"
)

func TestCalibrationMap(t *testing.T) {
	portrait := touchscreen.Calibration{
		XTranslation: 15,
		YTranslation: 11,
		XOffset:      24,
		YOffset:      0,
		XMagnitude:   1,
		YMagnitude:   1,
	}

	tests := []struct {
		name       string
		cal        touchscreen.Calibration
		rawX, rawY uint16
		want       touchscreen.Point
	}{
		{
			name: "portrait",
			cal:  portrait,
			rawX: 64036, // -1500
			rawY: 63336, // -2200
			want: touchscreen.Point{X: 116, Y: 200},
		},
		{
			name: "zero raw",
			cal:  portrait,
			rawX: 0,
			rawY: 0,
			want: touchscreen.Point{X: 216, Y: 0},
		},
		{
			name: "truncating division",
			cal:  portrait,
			rawX: 64032, // -1504, 1504/15 truncates to 100
			rawY: 63326, // -2210, 2210/11 truncates to 200
			want: touchscreen.Point{X: 116, Y: 200},
		},
		{
			name: "magnitude scaling",
			cal: touchscreen.Calibration{
				XTranslation: 15,
				YTranslation: 11,
				XOffset:      24,
				YOffset:      0,
				XMagnitude:   2,
				YMagnitude:   3,
			},
			rawX: 64036,
			rawY: 63336,
			want: touchscreen.Point{X: 232, Y: 600},
		},
		{
			name: "wraps unsigned below zero",
			cal:  portrait,
			rawX: 32768, // negation is its own value, far off-panel
			rawY: 32768,
			want: touchscreen.Point{X: 63568, Y: 2978},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cal.Map(tt.rawX, tt.rawY)
			if got != tt.want {
				t.Errorf("Map(%d, %d) = %+v, want %+v", tt.rawX, tt.rawY, got, tt.want)
			}
		})
	}
}
