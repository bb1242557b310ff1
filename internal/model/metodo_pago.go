package model

// MetodoPago is the payment method of a venta or gasto. It doubles as the
// bucket key for the arqueo's per-method running totals.
type MetodoPago string

const (
	MetodoEfectivo        MetodoPago = "efectivo"
	MetodoTarjeta         MetodoPago = "tarjeta"
	MetodoTransferencia   MetodoPago = "transferencia"
	MetodoCuentaCorriente MetodoPago = "cuenta_corriente"
	MetodoQR              MetodoPago = "qr"
	MetodoOtro            MetodoPago = "otro"
)

// MetodosPago lists every accepted method, in display order.
var MetodosPago = []MetodoPago{
	MetodoEfectivo,
	MetodoTarjeta,
	MetodoTransferencia,
	MetodoCuentaCorriente,
	MetodoQR,
	MetodoOtro,
}

// Valido reports whether m is one of the accepted methods.
func (m MetodoPago) Valido() bool {
	for _, v := range MetodosPago {
		if m == v {
			return true
		}
	}
	return false
}
