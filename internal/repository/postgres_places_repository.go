package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"SpotMap-App/internal/domain/helper"
	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/infrastructure/database"
)

type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlacesRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

// spotRow spotsテーブルの1行を受け取るための構造体。
// スクレイピング由来のテーブルなので座標・タグ・割引はNULL許容。
type spotRow struct {
	ID          string
	Name        string
	Description sql.NullString
	Lat         sql.NullFloat64
	Lng         sql.NullFloat64
	Tags        sql.NullString
	Address     sql.NullString
	Region      sql.NullString
	Prefecture  sql.NullString
	City        sql.NullString
	URL         sql.NullString
	Img         sql.NullString
	Discount    sql.NullString
}

// toPlace spotRowを正規化済みPlaceに変換する
func (sr *spotRow) toPlace(index int) (model.Place, error) {
	raw := model.RawPlace{
		ID:         sr.ID,
		Name:       sr.Name,
		Desc:       sr.Description.String,
		Address:    sr.Address.String,
		Region:     sr.Region.String,
		Prefecture: sr.Prefecture.String,
		City:       sr.City.String,
		URL:        sr.URL.String,
		Img:        sr.Img.String,
	}
	if sr.Tags.Valid {
		raw.Tags = sr.Tags.String
	}
	if sr.Lat.Valid {
		raw.Lat = sr.Lat.Float64
	}
	if sr.Lng.Valid {
		raw.Lon = sr.Lng.Float64
	}
	if sr.Discount.Valid && sr.Discount.String != "" {
		var discount model.RawDiscount
		if err := json.Unmarshal([]byte(sr.Discount.String), &discount); err != nil {
			return model.Place{}, fmt.Errorf("discount JSONBパースエラー: %w", err)
		}
		raw.Discount = &discount
	}

	place := model.NormalizePlace(raw, index)
	helper.EnrichHierarchy(&place)
	return place, nil
}

const spotColumns = `id, name, description, lat, lng, tags, address, region, prefecture, city, url, img, discount`

func (r *PostgresPlacesRepository) List(ctx context.Context) ([]model.Place, error) {
	query := `SELECT ` + spotColumns + ` FROM spots ORDER BY id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	var places []model.Place
	index := 0
	for rows.Next() {
		var row spotRow
		err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.Lat, &row.Lng,
			&row.Tags, &row.Address, &row.Region, &row.Prefecture, &row.City,
			&row.URL, &row.Img, &row.Discount)
		if err != nil {
			return nil, fmt.Errorf("スポットデータスキャンエラー: %w", err)
		}

		place, err := row.toPlace(index)
		if err != nil {
			return nil, err
		}
		places = append(places, place)
		index++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポットデータの走査失敗: %w", err)
	}

	return places, nil
}

func (r *PostgresPlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE id = $1`

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result spotRow
	err := row.Scan(&result.ID, &result.Name, &result.Description, &result.Lat, &result.Lng,
		&result.Tags, &result.Address, &result.Region, &result.Prefecture, &result.City,
		&result.URL, &result.Img, &result.Discount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("スポット ID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	place, err := result.toPlace(0)
	if err != nil {
		return nil, err
	}
	return &place, nil
}
