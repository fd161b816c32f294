/*
Package operation runs a rewrite from file discovery to output.

	+-----------+    +-----------+    +-----------+
	|  collect  | -> |  filter   | -> |   scan    |
	|  (files)  |    | (globs +  |    | (matches) |
	+-----------+    |  pattern) |    +-----+-----+
	                 +-----------+          |
	+-----------+    +-----------+    +-----+-----+
	|  output   | <- |   apply   | <- |  approve  |
	| (write or |    |  (patch)  |    | (policy)  |
	|  diff)    |    +-----------+    +-----------+
	+-----------+

🎯 Purpose:
- Collects every file below the source directory
- Keeps files that pass the include/exclude globs and contain the pattern
- Asks the approval policy about each match and queues accepted tasks
- Applies the queued tasks per file once every file has been reviewed
- Prints line diffs (dry run) or writes the result under the output root

🔄 Flow:
1. The run mode is settled first; quitting here touches nothing
2. Content read by the filter pass is the content spans refer to
3. Approval is strictly sequential: file by file, match by match
4. An abort from the reviewer returns before the apply phase, so queued
   tasks are dropped and nothing is written
5. Every file is applied in memory before the first write, so an
   overlap in any file stops the run with nothing written

⚡ Errors:
- IOError wraps collect, read and write failures
- patch.OverlapError surfaces from the apply phase
- approval.ErrAborted marks a reviewer quitting

🔍 Example:

	runner, err := operation.New(operation.Options{
		Config:   cfg,
		Prompter: prompt.NewTerminal(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	summary, err := runner.Run(ctx)
*/
package operation
