package fileread

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

const parquetBatchSize = 256

// SessionRow mirrors the Parquet schema of a columnar re-export of the
// session table. Column names are the snake_cased forms of the workbook
// labels; they map back onto the canonical labels when rows are built.
type SessionRow struct {
	RutPaciente string   `parquet:"rut_paciente"`
	Nombre      *string  `parquet:"nombre,optional"`
	Correo      *string  `parquet:"correo,optional"`
	Celular     *string  `parquet:"celular,optional"`
	Servicio    *string  `parquet:"servicio,optional"`
	FechaSesion string   `parquet:"fecha_sesion"`
	FechaPago   *string  `parquet:"fecha_pago,optional"`
	MedioPago   *string  `parquet:"medio_pago,optional"`
	Monto       *float64 `parquet:"monto,optional"`
	MontoFinal  *float64 `parquet:"monto_final,optional"`
	FechaAbono  *string  `parquet:"fecha_abono,optional"`
}

// parquetLabels pairs each SessionRow column with the workbook label the
// normalizer keys on.
var parquetLabels = []string{
	"Rut paciente",
	"Nombre",
	"Correo",
	"Celular",
	"Servicio",
	"Fecha Sesión",
	"Fecha Pago",
	"Medio de Pago",
	"Monto",
	"Monto Final",
	"Fecha Abono",
}

func readParquet(path string) ([]string, []model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open parquet: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat parquet: %w", err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("open parquet file: %w", err)
	}

	reader := parquet.NewGenericReader[SessionRow](pf)
	defer reader.Close()

	rows := make([]model.RawRow, 0, reader.NumRows())
	buf := make([]SessionRow, parquetBatchSize)
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			rows = append(rows, buf[i].toRawRow())
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}
	return parquetLabels, rows, nil
}

func (r *SessionRow) toRawRow() model.RawRow {
	row := model.RawRow{}
	put := func(label, v string) {
		if v != "" {
			row[label] = v
		}
	}
	put("Rut paciente", r.RutPaciente)
	put("Nombre", deref(r.Nombre))
	put("Correo", deref(r.Correo))
	put("Celular", deref(r.Celular))
	put("Servicio", deref(r.Servicio))
	put("Fecha Sesión", r.FechaSesion)
	put("Fecha Pago", deref(r.FechaPago))
	put("Medio de Pago", deref(r.MedioPago))
	put("Fecha Abono", deref(r.FechaAbono))
	if r.Monto != nil {
		row["Monto"] = *r.Monto
	}
	if r.MontoFinal != nil {
		row["Monto Final"] = *r.MontoFinal
	}
	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
