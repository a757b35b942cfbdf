package main

//go:generate echo "Generating SQLC files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && sqlc generate -f ../storage/sqlc.yaml"
//go:generate echo "SQLC files generated"

// Regenerates the storage/db query layer from storage/queries. Run
//
// go generate ./cmd
//
// from the project root after editing a query or migration.
