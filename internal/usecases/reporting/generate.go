package reporting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
