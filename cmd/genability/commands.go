package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/icodeforyou/genability-go/genability"
	"github.com/icodeforyou/genability-go/isotime"
	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
	"github.com/icodeforyou/genability-go/types/maybe"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func accountCommand(s *session) *cli.Command {
	idFlags := []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "Genability account id"},
		&cli.StringFlag{Name: "pid", Usage: "provider account id, used when --id is not given"},
	}
	return &cli.Command{
		Name:  "account",
		Usage: "Manage accounts",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "account name"},
					&cli.StringFlag{Name: "pid", Usage: "provider account id, default: a generated CLI-<uuid>"},
					&cli.StringFlag{Name: "zip", Usage: "zipCode property"},
					&cli.StringFlag{Name: "territory", Usage: "territoryId property"},
					&cli.Int64Flag{Name: "tariff", Usage: "master tariff id"},
					&cli.StringFlag{Name: "effective", Usage: "tariff effective date-time"},
				},
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Account], error) {
					account, err := accountFromFlags(c)
					if err != nil {
						return nil, err
					}
					return g.Accounts.AddAccount(ctx, account)
				}),
			},
			{
				Name:  "get",
				Usage: "Fetch one account",
				Flags: idFlags,
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Account], error) {
					return g.Accounts.GetAccount(ctx, &request.GetAccountRequest{
						AccountID:         c.String("id"),
						ProviderAccountID: c.String("pid"),
					})
				}),
			},
			{
				Name:  "list",
				Usage: "List accounts",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "owner"},
					&cli.StringFlag{Name: "status", Usage: "ACTIVE, INACTIVE or DELETED"},
					&cli.StringFlag{Name: "search"},
				),
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Account], error) {
					b := base(c)
					b.Search = optString(c, "search")
					return g.Accounts.GetAccounts(ctx, &request.GetAccountsRequest{
						Base:   b,
						Owner:  optString(c, "owner"),
						Status: optString(c, "status"),
					})
				}),
			},
			{
				Name:  "delete",
				Usage: "Delete an account",
				Flags: append(idFlags, &cli.BoolFlag{Name: "hard", Usage: "remove the account instead of flagging it deleted"}),
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Account], error) {
					return g.Accounts.DeleteAccount(ctx, &request.DeleteAccountRequest{
						AccountID:         c.String("id"),
						ProviderAccountID: optString(c, "pid"),
						HardDelete:        optBool(c, "hard"),
					})
				}),
			},
		},
	}
}

func accountFromFlags(c *cli.Context) (types.Account, error) {
	account := types.Account{
		AccountName:       c.String("name"),
		ProviderAccountID: c.String("pid"),
		Properties:        map[string]types.PropertyData{},
	}
	if account.ProviderAccountID == "" {
		account.ProviderAccountID = "CLI-" + uuid.NewString()
	}
	for flag, key := range map[string]string{"zip": "zipCode", "territory": "territoryId"} {
		if c.IsSet(flag) {
			account.Properties[key] = types.PropertyData{KeyName: key, DataValue: c.String(flag)}
		}
	}
	if c.IsSet("tariff") {
		tariff := types.Tariff{MasterTariffID: c.Int64("tariff")}
		effective, err := optTime(c, "effective")
		if err != nil {
			return types.Account{}, err
		}
		if effective.IsValid() {
			tariff.EffectiveDate = isotime.NewDateTime(effective.Value())
		}
		account.Tariffs = []types.Tariff{tariff}
	}
	return account, nil
}

func profileCommand(s *session) *cli.Command {
	idFlags := []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "Genability profile id"},
		&cli.StringFlag{Name: "pid", Usage: "provider profile id, used when --id is not given"},
	}
	return &cli.Command{
		Name:  "profile",
		Usage: "Manage usage profiles",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Fetch one profile, optionally with its readings",
				Flags: append(idFlags,
					&cli.BoolFlag{Name: "readings", Usage: "include reading data"},
					&cli.StringFlag{Name: "from"},
					&cli.StringFlag{Name: "to"},
					&cli.StringFlag{Name: "group-by", Usage: "YEAR, MONTH, WEEK, DAY, HOUR or QTRHOUR"},
					&cli.StringFlag{Name: "clip-by", Usage: "OUTER or INNER"},
				),
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Profile], error) {
					from, to, err := timeRange(c)
					if err != nil {
						return nil, err
					}
					r := &request.GetProfileRequest{
						ProfileID:         c.String("id"),
						ProviderProfileID: c.String("pid"),
						PopulateReadings:  optBool(c, "readings"),
						FromDateTime:      from,
						ToDateTime:        to,
					}
					if c.IsSet("group-by") {
						r.GroupBy = maybe.Some(types.GroupBy(strings.ToUpper(c.String("group-by"))))
					}
					if c.IsSet("clip-by") {
						r.ClipBy = maybe.Some(types.ClipBy(strings.ToUpper(c.String("clip-by"))))
					}
					return g.Profiles.GetProfile(ctx, r)
				}),
			},
			{
				Name:  "list",
				Usage: "List profiles of an account",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "account-id"},
					&cli.StringFlag{Name: "account-pid"},
				),
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Profile], error) {
					return g.Profiles.GetProfiles(ctx, &request.GetProfilesRequest{
						Base:              base(c),
						AccountID:         optString(c, "account-id"),
						ProviderAccountID: optString(c, "account-pid"),
					})
				}),
			},
			{
				Name:  "delete",
				Usage: "Delete a profile",
				Flags: idFlags,
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Profile], error) {
					return g.Profiles.DeleteProfile(ctx, &request.DeleteProfileRequest{
						ProfileID:         c.String("id"),
						ProviderProfileID: c.String("pid"),
					})
				}),
			},
		},
	}
}

func priceCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "price",
		Usage: "Show the prices of a tariff over a period",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "tariff", Usage: "master tariff id", Required: true},
			&cli.StringFlag{Name: "from"},
			&cli.StringFlag{Name: "to"},
			&cli.Int64Flag{Name: "territory"},
			&cli.StringFlag{Name: "consumption", Usage: "consumption amount in kWh"},
			&cli.StringFlag{Name: "account-id"},
		},
		Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Price], error) {
			from, to, err := timeRange(c)
			if err != nil {
				return nil, err
			}
			r := &request.GetPriceRequest{
				MasterTariffID: c.Int64("tariff"),
				FromDateTime:   from,
				ToDateTime:     to,
				TerritoryID:    optInt64(c, "territory"),
				AccountID:      optString(c, "account-id"),
			}
			if c.IsSet("consumption") {
				amount, err := decimal.NewFromString(c.String("consumption"))
				if err != nil {
					return nil, fmt.Errorf("invalid --consumption: %w", err)
				}
				r.ConsumptionAmount = maybe.Some(amount)
			}
			return g.Prices.GetPrice(ctx, r)
		}),
	}
}

func tariffCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "tariff",
		Usage: "Look up tariffs",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Flags: []cli.Flag{&cli.Int64Flag{Name: "id", Usage: "master tariff id", Required: true}},
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Tariff], error) {
					return g.Tariffs.GetTariff(ctx, &request.GetTariffRequest{MasterTariffID: c.Int64("id")})
				}),
			},
			{
				Name: "list",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "zip"},
					&cli.Int64Flag{Name: "lse"},
					&cli.StringSliceFlag{Name: "customer-class", Usage: "RESIDENTIAL, GENERAL or SPECIAL_USE"},
				),
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Tariff], error) {
					r := &request.GetTariffsRequest{
						Base:    base(c),
						ZipCode: optString(c, "zip"),
						LseID:   optInt64(c, "lse"),
					}
					if c.IsSet("customer-class") {
						r.CustomerClasses = maybe.Some(c.StringSlice("customer-class"))
					}
					return g.Tariffs.GetTariffs(ctx, r)
				}),
			},
		},
	}
}

func propertyCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "property",
		Usage: "Look up property keys",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Flags: []cli.Flag{&cli.StringFlag{Name: "key", Required: true}},
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.PropertyKey], error) {
					return g.Properties.GetPropertyKey(ctx, &request.GetPropertyKeyRequest{KeyName: c.String("key")})
				}),
			},
			{
				Name:  "list",
				Flags: append(pageFlags(), &cli.StringFlag{Name: "family"}, &cli.StringFlag{Name: "keyspace"}),
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.PropertyKey], error) {
					return g.Properties.GetPropertyKeys(ctx, &request.GetPropertyKeysRequest{
						Base:     base(c),
						Family:   optString(c, "family"),
						KeySpace: optString(c, "keyspace"),
					})
				}),
			},
		},
	}
}

func calendarCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "Look up holiday and billing calendars",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Flags: []cli.Flag{&cli.Int64Flag{Name: "id", Required: true}},
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Calendar], error) {
					return g.Calendars.GetCalendar(ctx, &request.GetCalendarRequest{CalendarID: c.Int64("id")})
				}),
			},
			{
				Name:  "list",
				Flags: append(pageFlags(), &cli.Int64Flag{Name: "lse"}, &cli.StringFlag{Name: "type"}),
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.Calendar], error) {
					return g.Calendars.GetCalendars(ctx, &request.GetCalendarsRequest{
						Base:         base(c),
						LseID:        optInt64(c, "lse"),
						CalendarType: optString(c, "type"),
					})
				}),
			},
			{
				Name: "dates",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "from"},
					&cli.StringFlag{Name: "to"},
				},
				Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[types.CalendarEventDate], error) {
					from, to, err := timeRange(c)
					if err != nil {
						return nil, err
					}
					return g.Calendars.GetCalendarDates(ctx, &request.GetCalendarDatesRequest{
						CalendarID:   c.Int64("id"),
						FromDateTime: from,
						ToDateTime:   to,
					})
				}),
			},
		},
	}
}

func uploadCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Bulk upload a file of readings",
		Flags: []cli.Flag{
			&cli.PathFlag{Name: "file", Required: true},
			&cli.StringFlag{Name: "format", Usage: "csv or espi"},
		},
		Action: call(s, func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[string], error) {
			f, err := os.Open(c.Path("file"))
			if err != nil {
				return nil, fmt.Errorf("failed to open upload file: %w", err)
			}
			defer f.Close()
			return g.BulkUpload.UploadFile(ctx, &request.BulkUploadRequest{
				FileName:   filepath.Base(f.Name()),
				FileData:   f,
				FileFormat: optString(c, "format"),
			})
		}),
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page-start"},
		&cli.IntFlag{Name: "page-count"},
	}
}

func base(c *cli.Context) request.Base {
	return request.Base{
		PageStart: optInt(c, "page-start"),
		PageCount: optInt(c, "page-count"),
	}
}

func optString(c *cli.Context, name string) maybe.Maybe[string] {
	if !c.IsSet(name) {
		return maybe.None[string]()
	}
	return maybe.Some(c.String(name))
}

func optBool(c *cli.Context, name string) maybe.Maybe[bool] {
	if !c.IsSet(name) {
		return maybe.None[bool]()
	}
	return maybe.Some(c.Bool(name))
}

func optInt(c *cli.Context, name string) maybe.Maybe[int] {
	if !c.IsSet(name) {
		return maybe.None[int]()
	}
	return maybe.Some(c.Int(name))
}

func optInt64(c *cli.Context, name string) maybe.Maybe[int64] {
	if !c.IsSet(name) {
		return maybe.None[int64]()
	}
	return maybe.Some(c.Int64(name))
}

func optTime(c *cli.Context, name string) (maybe.Maybe[time.Time], error) {
	if !c.IsSet(name) {
		return maybe.None[time.Time](), nil
	}
	t, err := isotime.Parse(c.String(name))
	if err != nil {
		return maybe.None[time.Time](), fmt.Errorf("invalid --%s: %w", name, err)
	}
	return maybe.Some(t), nil
}

func timeRange(c *cli.Context) (from, to maybe.Maybe[time.Time], err error) {
	if from, err = optTime(c, "from"); err != nil {
		return
	}
	to, err = optTime(c, "to")
	return
}
