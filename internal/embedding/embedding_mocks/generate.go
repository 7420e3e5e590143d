package embedding_mocks

//go:generate mockgen -source=../embedder.go -destination=embedding_mocks.go -package=embedding_mocks
