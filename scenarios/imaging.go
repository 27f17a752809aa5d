package scenarios

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cihub/seelog"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/config"
	"github.com/mcastellin/aws-scenarios/demotools"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/mcastellin/aws-scenarios/service/bucket"
	"github.com/mcastellin/aws-scenarios/service/imaging"
	"github.com/mcastellin/aws-scenarios/service/medicalimaging"
	"github.com/mcastellin/aws-scenarios/service/stacks"
	"github.com/pkg/errors"
)

// Outputs of the imaging workflow stack
const (
	outputRoleArn          = "RoleArn"
	outputInputBucketName  = "InputBucketName"
	outputOutputBucketName = "OutputBucketName"
	outputDatastoreId      = "DatastoreID"
)

const (
	inputDirectory  = "input"
	outputDirectory = "output"
	reportFileName  = "report.json"
)

// WorkflowReport is the verification summary of every image set created by
// one import job
type WorkflowReport struct {
	ImportJobId string            `json:"importJobId"`
	DatastoreId string            `json:"datastoreId"`
	StartedAt   time.Time         `json:"startedAt"`
	Passed      int               `json:"passed"`
	Failed      int               `json:"failed"`
	ImageSets   []*imaging.Report `json:"imageSets"`
	Errors      []string          `json:"errors,omitempty"`
}

func (r *WorkflowReport) add(report *imaging.Report) {
	r.ImageSets = append(r.ImageSets, report)
	r.Passed += report.Passed
	r.Failed += report.Failed
}

func (r *WorkflowReport) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode workflow report")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "could not create report directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "could not write report %s", path)
}

// ImagingScenario copies DICOM files from the IDC open data bucket, imports
// them into a HealthImaging data store and verifies every decoded frame
// against the checksums stored in the image set metadata
type ImagingScenario struct {
	Stacks         *stacks.Stacks
	MedicalImaging *medicalimaging.MedicalImaging
	Bucket         *bucket.Bucket
	Sts            awsapis.CallerIdentityGetter
	Ledger         *Ledger
	Questioner     demotools.IQuestioner
	Config         config.ImagingConfig
	// FrameWorkers bounds concurrent frame verification
	FrameWorkers int
	// Codec overrides the default JPEG 2000 codec
	Codec imaging.Codec
	Out   io.Writer
}

func (s *ImagingScenario) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func (s *ImagingScenario) Run(ctx context.Context) error {
	s.printf("%s\n", separator)
	s.printf("Welcome to the AWS HealthImaging working with image sets and frames workflow.\n")
	s.printf("%s\n", separator)
	s.printf("This workflow imports DICOM files into a HealthImaging data store, downloads\n")
	s.printf("the image frames it creates and verifies each decoded frame with a CRC32 checksum.\n")

	outputs, err := s.deploy(ctx)
	if err != nil {
		return s.finish(ctx, err)
	}
	datastoreId := outputs[outputDatastoreId]

	input, err := s.copyImages(ctx, outputs[outputInputBucketName])
	if err != nil {
		return s.finish(ctx, err)
	}

	jobId, imageSetIds, err := s.importImages(ctx, datastoreId, input, outputs)
	if err != nil {
		return s.finish(ctx, err)
	}

	report, err := s.verify(ctx, datastoreId, jobId, imageSetIds)
	if err != nil {
		return s.finish(ctx, err)
	}
	if err := s.uploadReport(ctx, report, outputs[outputOutputBucketName]); err != nil {
		return s.finish(ctx, err)
	}

	var verifyErr error
	if report.Failed > 0 || len(report.Errors) > 0 {
		verifyErr = errors.Errorf("%d image frames failed verification", report.Failed)
	}
	return s.finish(ctx, verifyErr)
}

func (s *ImagingScenario) deploy(ctx context.Context) (map[string]string, error) {
	accountId, err := CallerAccountId(ctx, s.Sts)
	if err != nil {
		return nil, err
	}
	body, err := stacks.ReadTemplate(s.Config.TemplateFile)
	if err != nil {
		return nil, err
	}

	s.printf("%s\n", separator)
	s.printf("The workflow needs a data store, an input and an output bucket and an IAM role\n")
	s.printf("for the import. They are created with the CloudFormation stack %s.\n", s.Config.StackName)
	datastoreName := s.Questioner.Ask("Enter a name for the data store: ", demotools.NotEmpty)

	stackId, err := s.Stacks.Create(ctx, s.Config.StackName, body, map[string]string{
		"datastoreName": datastoreName,
		"userAccountID": accountId,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Ledger.Record(ctx, domain.ResourceTypeCloudFormationStack, s.Config.StackName,
		domain.StackState{StackName: s.Config.StackName, StackId: stackId}); err != nil {
		return nil, err
	}
	outputs, err := s.Stacks.WaitForCreate(ctx, s.Config.StackName)
	if err != nil {
		return nil, err
	}
	err = stacks.RequireOutputs(s.Config.StackName, outputs,
		outputRoleArn, outputInputBucketName, outputOutputBucketName, outputDatastoreId)
	if err != nil {
		return nil, err
	}

	if err := s.MedicalImaging.WaitForDatastoreActive(ctx, outputs[outputDatastoreId]); err != nil {
		return nil, err
	}
	s.printf("Data store %s is active.\n", outputs[outputDatastoreId])
	return outputs, nil
}

func (s *ImagingScenario) copyImages(ctx context.Context, inputBucket string) (awsutils.S3Location, error) {
	s.printf("%s\n", separator)
	s.printf("This workflow uses DICOM files from the National Cancer Institute Imaging Data Commons.\n")
	s.printf("You have the choice of one of the following %d folders to copy.\n", len(s.Config.Choices))

	names := make([]string, 0, len(s.Config.Choices))
	for i, c := range s.Config.Choices {
		s.printf("\t%d. %s (%d images)\n", i+1, c.Name, c.Images)
		names = append(names, c.Name)
	}
	choice := s.Config.Choices[s.Questioner.AskChoice("Which DICOM files do you want to import? ", names)]

	src := awsutils.S3Location{Bucket: s.Config.SourceBucket, Prefix: choice.Prefix + "/"}
	dst := awsutils.S3Location{Bucket: inputBucket, Prefix: inputDirectory + "/" + choice.Prefix + "/"}
	s.printf("The files in %s will be copied to %s.\n", src, dst)
	s.Questioner.Ask("Press Enter to start the copy.")

	// cleanup empties the whole prefix, so partial copies are covered
	if err := s.Ledger.Record(ctx, domain.ResourceTypeCopiedObjects, dst.String(), domain.CopiedObjectsState{
		Bucket: dst.Bucket,
		Prefix: dst.Prefix,
	}); err != nil {
		return dst, err
	}
	res, err := s.Bucket.CopyPrefix(ctx, src, dst)
	if err != nil {
		return dst, err
	}
	if res.Err != nil {
		s.printf("%d objects could not be copied.\n", res.Failed)
		seelog.Warnf("%s name=%s: %v", domain.ResourceTypeCopiedObjects, dst, res.Err)
	}
	if len(res.Keys) == 0 {
		return dst, errors.Errorf("no DICOM files were copied from %s", src)
	}
	s.printf("Copied %d objects.\n", len(res.Keys))
	return dst, nil
}

func (s *ImagingScenario) importImages(ctx context.Context, datastoreId string, input awsutils.S3Location,
	outputs map[string]string) (string, []string, error) {

	s.printf("%s\n", separator)
	s.printf("Now the DICOM images will be imported into the data store with ID %s.\n", datastoreId)

	output := awsutils.S3Location{Bucket: outputs[outputOutputBucketName], Prefix: outputDirectory + "/"}
	// the import job writes its results under the output prefix
	if err := s.Ledger.Record(ctx, domain.ResourceTypeCopiedObjects, output.String(), domain.CopiedObjectsState{
		Bucket: output.Bucket,
		Prefix: output.Prefix,
	}); err != nil {
		return "", nil, err
	}

	jobId, err := s.MedicalImaging.StartDicomImportJob(ctx, medicalimaging.ImportJobInput{
		JobName:     "import-" + uuid.NewString()[:8],
		DatastoreId: datastoreId,
		RoleArn:     outputs[outputRoleArn],
		InputS3Uri:  input.String(),
		OutputS3Uri: output.String(),
	})
	if err != nil {
		return "", nil, err
	}
	if _, err := s.MedicalImaging.WaitForImportJob(ctx, datastoreId, jobId); err != nil {
		return jobId, nil, err
	}
	s.printf("The DICOM files were successfully imported. The import job ID is %s.\n", jobId)

	imageSetIds, err := s.MedicalImaging.GetImageSetsForImportJob(ctx, datastoreId, jobId)
	if err != nil {
		return jobId, nil, err
	}
	if err := s.Ledger.Record(ctx, domain.ResourceTypeImageSet, jobId, domain.ImageSetState{
		DatastoreId: datastoreId,
		ImportJobId: jobId,
		ImageSetIds: imageSetIds,
	}); err != nil {
		return jobId, nil, err
	}

	s.printf("The image sets created by this import job are:\n")
	for _, id := range imageSetIds {
		s.printf("\tImage set: %s\n", id)
	}
	return jobId, imageSetIds, nil
}

func (s *ImagingScenario) verify(ctx context.Context, datastoreId string, jobId string,
	imageSetIds []string) (*WorkflowReport, error) {

	s.printf("%s\n", separator)
	s.printf("The image frames are encoded in the HTJ2K format. Each frame is downloaded, decoded\n")
	s.printf("and verified with the CRC32 checksum from the image set metadata.\n")
	s.Questioner.Ask("Press Enter to download and verify the image frames.")

	outDir := filepath.Join(s.Config.OutputDir, "import_job_"+jobId)
	verifier := imaging.NewVerifier(s.MedicalImaging, s.FrameWorkers, outDir)
	if s.Codec != nil {
		verifier.Codec = s.Codec
	}

	report := &WorkflowReport{
		ImportJobId: jobId,
		DatastoreId: datastoreId,
		StartedAt:   time.Now(),
		ImageSets:   []*imaging.Report{},
	}
	var merr *multierror.Error
	for _, id := range imageSetIds {
		isReport, err := verifier.VerifyImageSet(ctx, datastoreId, id, "")
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			merr = multierror.Append(merr, errors.Wrapf(err, "image set %s", id))
			report.Errors = append(report.Errors, fmt.Sprintf("image set %s: %v", id, err))
			continue
		}
		report.add(isReport)
		s.printf("%s", isReport.String())
	}
	if merr != nil {
		seelog.Errorf("imaging workflow: verification of import job %s: %v", jobId, merr)
	}

	s.printf("%d image frames passed and %d failed verification. Frames are stored in %s.\n",
		report.Passed, report.Failed, outDir)
	return report, nil
}

func (s *ImagingScenario) uploadReport(ctx context.Context, report *WorkflowReport, outputBucket string) error {
	dir := "import_job_" + report.ImportJobId
	path := filepath.Join(s.Config.OutputDir, dir, reportFileName)
	if err := report.WriteFile(path); err != nil {
		return err
	}

	key := awsutils.S3Location{Bucket: outputBucket, Prefix: outputDirectory}.Key(dir + "/" + reportFileName)
	if err := s.Bucket.UploadFile(ctx, path, outputBucket, key); err != nil {
		return err
	}
	s.printf("The verification report was written to %s and uploaded to s3://%s/%s.\n", path, outputBucket, key)
	return nil
}

func (s *ImagingScenario) finish(ctx context.Context, scenarioErr error) error {
	if scenarioErr != nil {
		seelog.Errorf("imaging workflow stopped: %v", scenarioErr)
		s.printf("The workflow stopped: %v\n", scenarioErr)
	}

	s.printf("%s\n", separator)
	s.printf("This concludes this workflow.\n")
	if s.Ledger.Len() > 0 &&
		s.Questioner.AskBool("Clean up resources created by the workflow? (y/n) ", "y") {
		// an interrupted run still cleans up
		if err := s.Ledger.Cleanup(context.WithoutCancel(ctx)); err != nil {
			s.printf("Some resources could not be removed, run the cleanup command to retry.\n")
			if scenarioErr == nil {
				scenarioErr = err
			}
		} else {
			s.printf("Removed resources created by the workflow.\n")
		}
	}
	s.printf("Thanks for watching!\n")
	s.printf("%s\n", separator)
	return scenarioErr
}
