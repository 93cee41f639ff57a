package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/round --output domain/round --outpkg roundmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/stats --output domain/stats --outpkg statsmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RuleRepository --dir ../domain/bonus --output domain/bonus --outpkg bonusmock --filename rule_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MultiplierRepository --dir ../domain/bonus --output domain/bonus --outpkg bonusmock --filename multiplier_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/user --output domain/user --outpkg usermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/h2h --output domain/h2h --outpkg h2hmock --filename repository_mock.go
