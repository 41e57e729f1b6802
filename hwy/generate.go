package hwy

//go:generate go run ../cmd/vecgen generate --out . --pkg hwy
