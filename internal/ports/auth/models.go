package auth

// Claims es la identidad resuelta para el request.
// UserID es un string opaco y estable entregado por el proveedor de auth.
type Claims struct {
	UserID string
	Email  string
}
