package mail

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
//go:generate mockgen -source=smtpclient/client.go -destination=mocks/smtpclient.go -package=mocks -mock_names=Client=MockSMTPClient
