package testutils

import (
	"context"
	"log"
	"time"

	"github.com/abhishekarun2901/tsl/containers"
	"github.com/abhishekarun2901/tsl/db"
	"github.com/abhishekarun2901/tsl/model"
	"github.com/itbasis/go-clock"
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// InsertTestTeams creates the standard four-team fixture, two per pool, and
// each team's zeroed standings row. Team IDs are assigned by the database.
func InsertTestTeams(d db.DB) ([]model.Team, error) {
	teams := []model.Team{
		{Name: "Liverpool FC", Manager: "Amal Sidhan", Captain: "Afreen", Pool: model.PoolA},
		{Name: "Inter Milan", Manager: "Sarang", Captain: "Harisankar", Pool: model.PoolA},
		{Name: "Arsenal", Manager: "Jithin B", Captain: "Amal", Pool: model.PoolB},
		{Name: "AS Monaco", Manager: "Shyam", Captain: "Vishnu", Pool: model.PoolB},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := range teams {
		if err := d.AddTeam(ctx, &teams[i]); err != nil {
			return nil, err
		}
		if err := d.InitStanding(ctx, teams[i].ID); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

// InsertTestPlayers gives each team a goalkeeper and a forward.
func InsertTestPlayers(d db.DB, teams []model.Team) ([]model.Player, error) {
	names := [][2]string{
		{"Karthik Krishna U", "Jeswin"},
		{"Vishnu S", "Muhammed Anas"},
		{"Niranjan Ravi", "Adith Krishna"},
		{"Sanjay S", "Harikrishna R"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	players := make([]model.Player, 0, len(teams)*2)
	for i, team := range teams {
		gk := model.Player{Name: names[i][0], TeamID: team.ID, Position: model.POS_GK, Jersey: 1}
		fw := model.Player{Name: names[i][1], TeamID: team.ID, Position: model.POS_FW, Jersey: 9}
		for _, p := range []model.Player{gk, fw} {
			if err := d.AddPlayer(ctx, &p); err != nil {
				return nil, err
			}
			players = append(players, p)
		}
	}
	return players, nil
}
