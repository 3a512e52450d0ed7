package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/seesaw/internal/seesaw"
)

// ExportData is the human-facing dump of a snapshot with derived balance.
type ExportData struct {
	Objects     []seesaw.Object `json:"objects"`
	NextWeight  int             `json:"nextWeight"`
	NextColor   string          `json:"nextColor"`
	LeftTorque  float64         `json:"leftTorque"`
	RightTorque float64         `json:"rightTorque"`
	LeftWeight  int             `json:"leftWeight"`
	RightWeight int             `json:"rightWeight"`
	Angle       float64         `json:"angle"`
}

func Export(w io.Writer, snap *seesaw.Snapshot, p seesaw.Params) error {
	b := seesaw.Calculate(snap.Objects, p)
	data := ExportData{
		Objects:     snap.Objects,
		NextWeight:  snap.NextWeight,
		NextColor:   snap.NextColor,
		LeftTorque:  b.LeftTorque,
		RightTorque: b.RightTorque,
		LeftWeight:  b.LeftWeight,
		RightWeight: b.RightWeight,
		Angle:       b.Target,
	}
	if data.Objects == nil {
		data.Objects = []seesaw.Object{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
