// 14 Oct 2026

/*
Seqcount counts the sequences and residues in fasta and fastq files.

Usage:
	seqcount [flags] file [file ...]

The flags are:
	-summary
		Write the results to summary.txt in the current directory. The
		first file in a run overwrites it, later files are appended.
	-plot file.png
		After the last file, draw a bar chart of the residues in each file.
	-t
		Print out how long it all took.

Flags have to come before the file names.
The format comes from the name. Files ending in .fasta or .fa are fasta.
Files ending in .fastq or .fq are fastq. Either may be followed by .gz
for gzipped files. Other files, and files that do not exist, are skipped
with a warning.

For fasta, every line starting with ">" is a sequence and every other
line is residues. For fastq, records are four lines. We only look for
"@" where a header is expected. If it is not there, lines are skipped
until one starts with "@".

With no file names, seqcount exits with an error and says nothing.

For each file it prints
	Summary for: x.fa
	Total sequences found: 2
	Total residues found: 10
followed by a blank line.
*/
package main
