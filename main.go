package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/cmd"
	"github.com/mcastellin/aws-scenarios/logger"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/spf13/cobra"
)

// BuildVersion for this application
var BuildVersion string

var (
	configFile        string
	logLevel          string
	namespace         string
	stdin             bool
	resourceType      string
	resourceKey       string
	resourceStateData string
	datastoreId       string
	imageSetId        string
	versionId         string
	workers           int
	outputDir         string
	reportFile        string
	sourceUri         string
	destUri           string
	ouName            string
	accountParams     string
)

type operation interface {
	Run(ctx context.Context) error
}

// runWithEnvironment loads the environment and runs the operation built
// from it, interrupting on SIGINT
func runWithEnvironment(build func(env *cmd.Environment) operation) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := cmd.NewEnvironment(ctx, configFile, namespace)
	if err != nil {
		return err
	}
	defer env.Close()

	return build(env).Run(ctx)
}

var rootCmd = &cobra.Command{
	Use:   "aws-scenarios",
	Short: "aws-scenarios runs interactive AWS Control Tower and HealthImaging scenarios",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		logger.Setup()
		if logLevel != "" {
			return logger.SetLogLevel(logLevel)
		}
		return nil
	},
}

var controlTowerCmd = &cobra.Command{
	Use:   "controltower",
	Short: "Set up a landing zone, enable a baseline and toggle a control on the sandbox OU",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.ControlTowerCommand{Env: env, AccountParameters: accountParams}
		})
	},
}

var imagingCmd = &cobra.Command{
	Use:   "imaging",
	Short: "HealthImaging import and frame verification",
}

var imagingWorkflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Copy DICOM files, import them into a datastore and verify the image frames",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.ImagingWorkflowCommand{Env: env}
		})
	},
}

var imagingVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Download, decode and verify the frames of an image set",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.ImagingVerifyCommand{
				Env:         env,
				DatastoreId: datastoreId,
				ImageSetId:  imageSetId,
				VersionId:   versionId,
				Workers:     workers,
				OutputDir:   outputDir,
				ReportFile:  reportFile,
			}
		})
	},
}

var s3CopyCmd = &cobra.Command{
	Use:   "s3-copy",
	Short: "Copy every object under an S3 prefix to another prefix",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.S3CopyCommand{Env: env, Source: sourceUri, Dest: destUri, Workers: workers}
		})
	},
}

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "AWS Organizations helpers",
}

var orgSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Find or create an organizational unit under the organization root",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.OrgSetupCommand{Env: env, OuName: ouName}
		})
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Read and edit the resource ledger by resource type and key",
}

var stateSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Record a resource in the ledger so the cleanup command removes it",
	RunE: func(c *cobra.Command, args []string) error {
		if stdin && len(resourceStateData) > 0 {
			return fmt.Errorf("--data is not supported when reading from stdin")
		}
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.SaveEntry{
				Env:           env,
				ResourceType:  resourceType,
				ResourceKey:   resourceKey,
				ReadFromStdin: stdin,
				Payload:       resourceStateData,
			}
		})
	},
}

var stateReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Print the ledger entries as JSON",
	RunE: func(c *cobra.Command, args []string) error {
		// Discard logging to facilitate output parsing
		if err := logger.SetLogLevel("none"); err != nil {
			return err
		}
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.ReadEntries{Env: env, ResourceType: resourceType, ResourceKey: resourceKey}
		})
	},
}

var stateDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Forget a ledger entry without deleting the resource",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.DeleteEntry{Env: env, ResourceType: resourceType, ResourceKey: resourceKey}
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resources recorded in the ledger namespace",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.ListCommand{Env: env}
		})
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete every resource recorded in the ledger namespace",
	RunE: func(c *cobra.Command, args []string) error {
		return runWithEnvironment(func(env *cmd.Environment) operation {
			return &cmd.CleanupCommand{Env: env}
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the command version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Printf("aws-scenarios v%s\n", BuildVersion)
	},
}

func main() {
	defer seelog.Flush()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to the scenario configuration file. Defaults are used when empty.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, crit or none.")
	rootCmd.PersistentFlags().StringVar(&namespace, "ns", "", "The ledger namespace used to record created resources for cleanup.")

	controlTowerCmd.Flags().StringVar(&accountParams, "account-params", "",
		"Account stack parameters as `key=value;key=value`. Parameters not listed are prompted for.")

	imagingVerifyCmd.Flags().StringVar(&datastoreId, "datastore", "", "The HealthImaging datastore ID")
	imagingVerifyCmd.Flags().StringVar(&imageSetId, "image-set", "", "The image set ID")
	imagingVerifyCmd.Flags().StringVar(&versionId, "version", "", "The image set version. Latest when empty.")
	imagingVerifyCmd.Flags().IntVar(&workers, "workers", 0, "Number of frames verified concurrently")
	imagingVerifyCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory receiving the metadata and frame payloads")
	imagingVerifyCmd.Flags().StringVar(&reportFile, "report", "", "Write the verification report as JSON to this file")
	imagingVerifyCmd.MarkFlagRequired("datastore")
	imagingVerifyCmd.MarkFlagRequired("image-set")

	s3CopyCmd.Flags().StringVar(&sourceUri, "source", "", "Source location as s3://bucket/prefix")
	s3CopyCmd.Flags().StringVar(&destUri, "dest", "", "Destination location as s3://bucket/prefix")
	s3CopyCmd.Flags().IntVar(&workers, "workers", 0, "Number of objects copied concurrently")
	s3CopyCmd.MarkFlagRequired("source")
	s3CopyCmd.MarkFlagRequired("dest")

	orgSetupCmd.Flags().StringVar(&ouName, "ou", "", "Name of the organizational unit. Defaults to the configured sandbox OU.")

	stateSaveCmd.Flags().StringVar(&resourceType, "type", "",
		"Resource type: "+strings.Join(service.InitCleaners().ResourceTypes(), ", "))
	stateSaveCmd.Flags().StringVar(&resourceKey, "key", "", "Key of the resource within its type, e.g. the stack name")
	stateSaveCmd.Flags().StringVar(&resourceStateData, "data", "", "The ledger payload of the resource as a JSON string")
	stateSaveCmd.Flags().BoolVar(&stdin, "stdin", false, "Read the ledger payload from stdin.")
	stateSaveCmd.MarkFlagRequired("type")
	stateSaveCmd.MarkFlagRequired("key")

	stateReadCmd.Flags().StringVar(&resourceType, "type", "", "Only print entries of this resource type")
	stateReadCmd.Flags().StringVar(&resourceKey, "key", "", "Only print entries with this resource key")

	stateDeleteCmd.Flags().StringVar(&resourceType, "type", "", "Resource type of the entry")
	stateDeleteCmd.Flags().StringVar(&resourceKey, "key", "", "Resource key of the entry")
	stateDeleteCmd.MarkFlagRequired("type")
	stateDeleteCmd.MarkFlagRequired("key")

	imagingCmd.AddCommand(imagingWorkflowCmd, imagingVerifyCmd)
	orgCmd.AddCommand(orgSetupCmd)
	stateCmd.AddCommand(stateSaveCmd, stateReadCmd, stateDeleteCmd)

	rootCmd.AddCommand(controlTowerCmd)
	rootCmd.AddCommand(imagingCmd)
	rootCmd.AddCommand(s3CopyCmd)
	rootCmd.AddCommand(orgCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		seelog.Error(err)
		seelog.Flush()
		os.Exit(1)
	}
}
