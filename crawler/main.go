package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epidata-dev/covidseries-api/clean"
	"github.com/epidata-dev/covidseries-api/external/jhu"
	"github.com/epidata-dev/covidseries-api/schema"
	"github.com/epidata-dev/covidseries-api/store"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second
)

type Cron interface {
	Run()
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covidseries")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covidseries")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// primeCache downloads every dataset and writes it into the local cache
// directory so the pipeline can run from disk. A dataset that fails to
// download is skipped here; the pipeline reports it as unavailable later.
func primeCache(ctx context.Context, directory string) {
	remote := jhu.NewRemoteSource()
	data := map[string]*schema.RawTable{}
	for _, group := range schema.Groups {
		for _, kind := range schema.Kinds {
			key := schema.ResultKey(group, kind)
			raw, err := remote.Fetch(ctx, group, kind)
			if nil != err {
				log.WithFields(log.Fields{"prefix": logPrefix, "dataset": key, "error": err}).Error("download dataset")
				continue
			}
			data[key] = raw
		}
	}

	if err := jhu.WriteRaw(data, directory); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "directory": directory, "error": err}).Error("write raw cache")
	}
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if dsn := viper.GetString("sentry.dsn"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("init sentry")
		}
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	initialCtx, cancelInitialization := context.WithCancel(context.Background())
	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	cancelInitialization()

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	var source jhu.DataSource
	directory := viper.GetString("jhu.directory")
	if viper.GetBool("jhu.download") && directory != "" {
		primeCache(context.Background(), directory)
		source = jhu.NewLocalSource(directory)
	} else if directory != "" {
		source = jhu.NewLocalSource(directory)
	} else {
		source = jhu.NewRemoteSource()
	}

	crawlerSeries := newSeriesCrawler(mStore, clean.NewPipeline(source))
	crawlerSeries.Run()

	sentry.Flush(defaultTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if mongoClient != nil {
		log.Info("Shutting down mongo store")
		_ = mongoClient.Disconnect(ctx)
	}
}
